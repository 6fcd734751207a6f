// Package logger provides the process-wide structured logger.
package logger

import "go.uber.org/zap"

// Log is the package-level logger used throughout the renderer. It is
// nil until Init is called; callers outside of cmd/raytracer should
// never call Init themselves.
var Log *zap.Logger

// Init wires up a production zap logger. Safe to call more than once;
// later calls replace Log.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		// Fall back to a no-op logger rather than panicking; the
		// renderer must still be able to run headless in CI.
		l = zap.NewNop()
	}
	Log = l
}

// InitDevelopment wires up a human-readable logger for local runs.
func InitDevelopment() {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	Log = l
}

// Sync flushes any buffered log entries. Call from a deferred statement
// in main; errors are expected (and ignored) when stderr is a terminal.
func Sync() {
	if Log == nil {
		return
	}
	_ = Log.Sync()
}
