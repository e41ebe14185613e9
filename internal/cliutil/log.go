// Package cliutil holds the small amount of CLI-only scaffolding
// cmd/dgcat needs — a leveled logger in the style of
// ClusterCockpit-cc-backend's log package, kept out of the core
// decode/encode path entirely (the core never logs on its own).
package cliutil

import (
	"fmt"
	"os"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger is a minimal leveled writer to stderr; cmd/dgcat owns one
// instance for the lifetime of the process.
type Logger struct {
	level Level
}

func New(level Level) *Logger {
	return &Logger{level: level}
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(LevelError, "ERROR", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(LevelWarn, "WARN", format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(LevelInfo, "INFO", format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, "DEBUG", format, args...)
}

func (l *Logger) printf(level Level, tag, format string, args ...any) {
	if level > l.level {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}
