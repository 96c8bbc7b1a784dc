// Package logger wraps zerolog with the small API the CLI and builders use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger writing to opts.Writer, or stderr when unset.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that discards all entries.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// With returns a derived logger carrying the key/value pairs.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(keyvals).Logger()}
}

// Debug writes a debug entry with optional key/value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(keyvals).Msg(msg)
}

// Info writes an informational entry with optional key/value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(keyvals).Msg(msg)
}

// Warn writes a warning entry with optional key/value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(keyvals).Msg(msg)
}

// Error writes an error entry including err.
func (l *Logger) Error(err error, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(keyvals).Msg(msg)
}
