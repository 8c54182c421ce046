// Package logger builds the service-wide *slog.Logger with a configurable
// level and output format.
package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// New returns a logger writing to stderr.
// Level is one of "debug", "info", "warn", "error" (default "info");
// format is "json", "pretty" or "text" (default "text").
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter returns a logger writing to w. Used by tests to capture
// output and by the serve command to redirect logs.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "pretty":
		// Human-friendly console output for local development. The charm
		// levels share slog's numeric values.
		h = charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(ParseLevel(level)),
			ReportTimestamp: true,
		})
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// Nop returns a logger that discards everything. Handy in tests that wire
// middleware or services but don't assert on log output.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level string to slog.Level. Unknown or empty
// values fall back to LevelInfo.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
