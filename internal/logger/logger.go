package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alkime/itranscript/internal/config"
)

// Level maps the configured environment and level names to a slog level.
func Level(cfg *config.Config) slog.Level {
	logLevel := slog.LevelInfo
	if cfg.Env == "development" {
		logLevel = slog.LevelDebug
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	return logLevel
}

// SetupLogger configures structured JSON logging to stdout and installs it
// as the default logger.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return setup(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: Level(cfg),
	}))
}

// SetupTextLogger installs a human readable logger writing to w. The
// terminal UI points it at a file so output does not corrupt the screen.
func SetupTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return setup(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func setup(handler slog.Handler) *slog.Logger {
	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
