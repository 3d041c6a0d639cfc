// Package logger provides structured logging for the engine.
//
// It uses the standard library log/slog package with a JSON handler and a
// configurable level, plus helpers for carrying a logger on a context.
package logger
