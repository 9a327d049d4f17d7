// Package logging assembles structured slog loggers and formatting helpers
// used across cdinventory.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and stamps every record with a per-run session ID. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same keys.
package logging
