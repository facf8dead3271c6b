// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// Service is attached to every record.
const Service = "sheetload"

// New returns a JSON logger writing to w. Time and level keys are renamed to
// "ts" and "severity".
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				a.Key = "severity"
			}
			return a
		},
	})
	return slog.New(handler).With(slog.String("service", Service))
}

// Init installs a logger built by New as the slog default and returns it.
func Init(w io.Writer, level slog.Leveler) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}
