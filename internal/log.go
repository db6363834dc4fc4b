package internal

import (
	"log"
	"os"
	"strings"
)

// LogLevel controls which messages a Logger emits.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel reads a level name, case-insensitively. Unknown or empty
// names fall back to Info.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return LogLevelError
	case "WARN", "WARNING":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger is a leveled front over the standard logger.
type Logger struct {
	level LogLevel
}

func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger builds a logger at the level named by LOG_LEVEL.
func NewDefaultLogger() *Logger {
	return &Logger{level: ParseLogLevel(os.Getenv("LOG_LEVEL"))}
}

func (l *Logger) enabled(level LogLevel) bool {
	return l.level >= level
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.enabled(LogLevelError) {
		log.Printf("[ERROR] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.enabled(LogLevelWarn) {
		log.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.enabled(LogLevelInfo) {
		log.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.enabled(LogLevelDebug) {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// DefaultLogger is the process-wide fallback used when a component is built
// without an explicit logger.
var DefaultLogger = NewDefaultLogger()
