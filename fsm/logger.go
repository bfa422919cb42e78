package fsm

import "log/slog"

// Logger is the diagnostic sink of a machine. *slog.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...any)
}

// LogFunc adapts a plain function to the Logger interface.
type LogFunc func(msg string, args ...any)

// Warn implements Logger.
func (fn LogFunc) Warn(msg string, args ...any) { fn(msg, args...) }

// Discard drops every diagnostic.
var Discard Logger = LogFunc(func(string, ...any) {})

// defaultLogger is used when no WithLogger option is given.
func defaultLogger() Logger { return slog.Default() }
