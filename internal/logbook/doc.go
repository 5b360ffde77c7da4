// Package logbook loads, queries, and persists the working-hours
// logfile. It aggregates per-day records into weekly and monthly
// totals, tracks the flex balance, and guards saves with a file lock
// and a backup copy.
package logbook
