// Package archive moves finished logbook days into a SQLite database so
// the plain-text logfile stays small. Every invocation is recorded as a
// run; archived entries stay queryable for listing and per-year stats.
package archive
