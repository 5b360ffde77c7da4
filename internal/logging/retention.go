package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanupOldLogs removes files in dir older than retentionDays. A value
// of 0 disables pruning. The currently active log file is skipped.
func CleanupOldLogs(logger *slog.Logger, dir string, retentionDays int, exclude ...string) {
	if retentionDays <= 0 {
		return
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	excluded := make(map[string]struct{}, len(exclude))
	for _, path := range exclude {
		excluded[filepath.Base(path)] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, skip := excluded[entry.Name()]; skip {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			if logger != nil {
				logger.Warn("log retention remove failed", String("path", path), Error(err))
			}
			continue
		}
		if logger != nil {
			logger.Debug("log pruned", String("path", path))
		}
	}
}
