// Package logger holds the process-wide zap logger.
package logger

import "sync"

const appName = "scaler"

// Level names accepted in the log.level setting.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	shared     *Logger
	sharedOnce sync.Once
)

// Get returns the shared logger writing to stdout. The level of the first
// call wins.
func Get(level string) *Logger {
	sharedOnce.Do(func() {
		shared = newStdoutLogger(level)
	})
	return shared
}
