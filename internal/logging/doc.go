// Package logging assembles structured slog loggers used across langcache.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code can tag log lines
// with the run identifier. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Logs are diagnostics and go to stderr plus the log file; the human-readable
// progress text the pipelines print is a separate stream.
package logging
