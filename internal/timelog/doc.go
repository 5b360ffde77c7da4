// Package timelog defines the core time tracking model: entry kinds,
// clock times, single entries, and whole days, together with the
// line-oriented logfile codec.
//
// The logfile is plain text with one entry per line:
//
//	2017/12/18 Mon | Work 06:31:00 UNDEF
//
// Users edit this file by hand, so Parse/String round-trip byte-exactly
// and unknown input fails with a descriptive parse error rather than
// being silently repaired.
//
// Treat this package as the single source of truth for entry semantics;
// logbook and archive both build on the types defined here.
package timelog
