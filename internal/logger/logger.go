// Package logger provides the configured zerolog logger.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "athlete"

// New returns a logger writing to w. format "json" emits JSON lines; anything
// else uses the human-readable console writer. Unknown levels fall back to
// warn.
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	out := w
	if !strings.EqualFold(strings.TrimSpace(format), "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(out).Level(lvl).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
