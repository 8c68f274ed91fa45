package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
)

const serviceName = "memoriaviva"

// NewLogger builds the process logger from LogConfig, tags every record with
// the service name and build version, and installs it as slog's default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newLogHandler(cfg, os.Stderr)).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newLogHandler returns a JSON handler unless format is "text", which also
// records the source position.
func newLogHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
