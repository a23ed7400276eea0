package core

import "log"

// Logger is the logging surface the simulation writes to
// *log.Logger satisfies it
type Logger interface {
	Printf(format string, v ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}

// OrNop returns l, or a NopLogger when l is nil or a nil *log.Logger
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	if std, ok := l.(*log.Logger); ok && std == nil {
		return NopLogger{}
	}
	return l
}
