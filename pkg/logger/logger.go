// Package logger constructs the application's structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a slog.Logger writing text output to stderr at the given level.
// Unknown level strings fall back to info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})

	return slog.New(handler)
}
