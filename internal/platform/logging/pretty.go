package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newPrettyHandler creates a human-friendly terminal handler backed by
// charmbracelet/log. Intended for local development; production profiles
// should use the json format.
func newPrettyHandler(w io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           slogToCharmLevel(level),
	})
}

// slogToCharmLevel maps an slog.Level onto the nearest charm log level.
// Trace has no charm equivalent and collapses into debug.
func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
