// Package logging assembles the structured slog loggers used across
// drivefind.
//
// It centralizes level and format plumbing, keeps log output on stderr so
// resolved paths on stdout remain pipeable, and exposes context-aware helpers
// that tag lines with the per-invocation correlation ID and active resolution
// strategy. Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
