// Package logging assembles the structured slog loggers used across
// kodi-tools commands.
//
// It owns the console and JSON handlers, resolves the "auto" format via TTY
// detection, and exposes context-aware helpers so run code can tag log lines
// with run IDs, stages, and record paths. A no-op logger is available for
// tests and wiring code that cannot fail.
package logging
