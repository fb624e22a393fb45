package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

	// Discard drops every record. Handy in tests.
	Discard = New(Options{io.Discard, ErrorLevel, TypeText})
)

type logger struct {
	*slog.Logger
}

// New builds a slog backed Logger. A nil Buffer writes to stderr.
func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = os.Stderr
	}
	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(buffer, handlerOpts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(buffer, handlerOpts)
	}
	return &logger{
		Logger: slog.New(handler),
	}
}
