// Package logging assembles the structured slog loggers used across subsync.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attr helpers plus a no-op logger so hook code and
// tests emit data with the same shape everywhere.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
