package logger

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide slog default. Production logs JSON at
// info level; every other environment logs text at debug level so the
// per-row import warnings are visible while developing.
func Setup(env string) {
	var handler slog.Handler

	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	slog.SetDefault(slog.New(handler))
	slog.Info("logger initialized", "env", env)
}
