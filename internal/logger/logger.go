package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger, JSON on stdout at info level.
func New() *slog.Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel builds a JSON logger at the requested level.
func NewWithLevel(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
