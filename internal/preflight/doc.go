// Package preflight checks that the environment is ready: the logfile
// is writable and the data and log directories are accessible.
package preflight
