package logger

import (
	"log/slog"
	"os"
)

// Log is replaced by Init at startup; the default keeps package users safe in tests.
var Log = slog.Default()

func Init(level slog.Level) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
