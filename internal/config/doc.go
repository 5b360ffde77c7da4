// Package config loads, normalizes, and validates timelog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/timelog/config.toml or a
// project-local timelog.toml. The Config type centralizes every knob the CLI
// needs: the logfile location, the archive data directory, and workday
// expectations.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
