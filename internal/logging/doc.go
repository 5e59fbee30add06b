// Package logging assembles structured slog loggers for deploynotify.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// Logs default to stderr so stdout remains available for the run summary.
// Context helpers carry the dispatch correlation ID so every line emitted
// for one notification run can be grouped together. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
