package logging

import (
	"log"
	"sync/atomic"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var currentLevel int32 = WarnLevel

// SetLevel adjusts the minimum level of criticality which will be logged
func SetLevel(level int) {
	atomic.StoreInt32(&currentLevel, int32(level))
}

// Logf logs a message at a given level of criticality
func Logf(level int, format string, v ...interface{}) {
	if int32(level) < atomic.LoadInt32(&currentLevel) {
		return
	}
	log.Printf("["+LogLevelToString(level)+"] "+format, v...)
}

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}
