package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrUnknownLevel = errors.New("unknown log level")
	ErrUnknownType  = errors.New("unknown log type")
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel maps a case-insensitive name (debug, info, warn, error) to a
// Level.
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

// Output format of the handler.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	default:
		return TypeText, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}
