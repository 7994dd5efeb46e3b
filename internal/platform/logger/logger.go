// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var base atomic.Pointer[zerolog.Logger]

// Init configures the global JSON logger.
//
// level accepts debug|info|warn|error (anything else means info).
// pretty switches to the human readable console writer.
func Init(level string, pretty bool) {
	Set(New(os.Stdout, level, pretty))
}

// New builds a logger writing to w without touching the global one.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	base.Store(&l)
}

// L returns the global logger, initializing it at info level on first use.
func L() *zerolog.Logger {
	if l := base.Load(); l != nil {
		return l
	}
	Init("info", false)
	return base.Load()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
