// Package logger holds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the global logger. It is disabled until Init is called.
var Log = zerolog.Nop()

// Init configures Log to write human readable lines to w (stderr when nil).
// Only warnings and errors are emitted unless debug is set.
func Init(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Log.Warn()
}

// WithStage returns a logger tagged with the pipeline stage name.
func WithStage(name string) zerolog.Logger {
	return Log.With().Str("stage", name).Logger()
}
