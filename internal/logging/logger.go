package logging

import (
	"log"
	"os"
	"strings"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides leveled logging tagged with a component name
type Logger struct {
	component string
	level     LogLevel
	fromEnv   bool
}

// New creates a logger for component that follows LOG_LEVEL (default WARN, so
// conversion progress on stdout is not interleaved with diagnostics).
// The variable is read on every call, so values loaded from .env after
// package initialization still apply.
func New(component string) *Logger {
	return &Logger{component: component, fromEnv: true}
}

// NewWithLevel creates a logger with an explicit level
func NewWithLevel(component string, level LogLevel) *Logger {
	return &Logger{component: component, level: level}
}

// ParseLevel maps ERROR/WARN/INFO/DEBUG to a level, defaulting to WARN
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "INFO":
		return LogLevelInfo
	case "DEBUG":
		return LogLevelDebug
	}
	return LogLevelWarn
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, "ERROR", format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, "WARN", format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, "INFO", format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "DEBUG", format, args...)
}

// Enabled reports whether messages at level are written
func (l *Logger) Enabled(level LogLevel) bool {
	if l.fromEnv {
		return ParseLevel(os.Getenv("LOG_LEVEL")) >= level
	}
	return l.level >= level
}

func (l *Logger) logf(level LogLevel, tag, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	log.Printf("["+tag+"] ["+l.component+"] "+format, args...)
}
