// Package main hosts the timelog CLI entrypoint and command graph.
//
// The Cobra-based command tree covers day-to-day logging (start, end,
// batch), reports over days, weeks, and months, logfile inspection,
// archiving of finished days, and configuration scaffolding. It
// centralizes configuration resolution and logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
