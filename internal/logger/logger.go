package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the process-wide logger. "production" gets a JSON
// handler, anything else the text handler. Logs go to stderr because
// stdout carries generated code.
func Setup(env string) *slog.Logger {
	return SetupWriter(env, os.Stderr)
}

func SetupWriter(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if env == "development" {
		opts.Level = slog.LevelDebug
	}

	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
