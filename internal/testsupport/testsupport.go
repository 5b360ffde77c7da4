// Package testsupport provides shared helpers for tests: temp-dir
// backed configs and pre-seeded logbooks and archive stores.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timelog/internal/archive"
	"timelog/internal/config"
	"timelog/internal/logbook"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogFile = filepath.Join(base, "timelog")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WriteLogbook fills the config's logfile with the given entry lines.
func WriteLogbook(t testing.TB, cfg *config.Config, lines ...string) {
	t.Helper()

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(cfg.Paths.LogFile, []byte(content), 0o644); err != nil {
		t.Fatalf("write logbook: %v", err)
	}
}

// MustOpenBook opens the logbook named by the config.
func MustOpenBook(t testing.TB, cfg *config.Config) *logbook.Book {
	t.Helper()

	book, err := logbook.Open(cfg)
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	return book
}

// MustOpenStore opens the archive database named by the config and
// closes it when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *archive.Store {
	t.Helper()

	store, err := archive.Open(cfg)
	if err != nil {
		t.Fatalf("open archive store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
