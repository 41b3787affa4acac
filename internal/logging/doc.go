// Package logging assembles the structured slog loggers used across the edit
// pipeline.
//
// It owns the console/JSON handler selection, centralizes level plumbing, and
// exposes context-aware helpers so stage code automatically tags log lines
// with run IDs and stage names. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits events with the same shape.
package logging
