package internal

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

// Logger prefixes every line with a component tag and drops lines above its level
type Logger struct {
	component string
	level     LogLevel
}

// NewLogger creates a component logger at the level named by LOG_LEVEL
func NewLogger(component string) *Logger {
	return &Logger{component: component, level: ParseLogLevel(os.Getenv("LOG_LEVEL"))}
}

// ParseLogLevel maps ERROR/WARN/INFO/DEBUG to a level; anything else is INFO
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LogLevelError, "ERROR", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LogLevelWarn, "WARN", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LogLevelInfo, "INFO", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LogLevelDebug, "DEBUG", format, args...)
}

func (l *Logger) emit(level LogLevel, tag, format string, args ...interface{}) {
	if l.level < level {
		return
	}
	log.Printf("["+l.component+"] "+tag+" "+format, args...)
}
