// Package logging builds the application's slog loggers: a console
// handler that renders timestamped key=value lines and a JSON handler
// for machine consumption, plus retention pruning for the log
// directory.
package logging
