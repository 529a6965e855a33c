// Package logging assembles the structured slog loggers used across
// media-janitor commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes small helpers so command code can tag log lines with
// component names and run identifiers. The package also provides a no-op
// logger for tests.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits diagnostics with the same shape.
package logging
