package logger

import "github.com/user/ogimage/pkg/ports"

// MultiLogger fans every message out to several loggers.
type MultiLogger []ports.Logger

// NewMulti combines loggers. A single logger is returned unchanged.
func NewMulti(loggers ...ports.Logger) ports.Logger {
	if len(loggers) == 1 {
		return loggers[0]
	}
	return MultiLogger(loggers)
}

func (m MultiLogger) Debug(msg string, args ...interface{}) {
	for _, l := range m {
		l.Debug(msg, args...)
	}
}

func (m MultiLogger) Info(msg string, args ...interface{}) {
	for _, l := range m {
		l.Info(msg, args...)
	}
}

func (m MultiLogger) Warn(msg string, args ...interface{}) {
	for _, l := range m {
		l.Warn(msg, args...)
	}
}

func (m MultiLogger) Error(msg string, args ...interface{}) {
	for _, l := range m {
		l.Error(msg, args...)
	}
}

// WithComponent applies the component to every wrapped logger.
func (m MultiLogger) WithComponent(component string) ports.Logger {
	out := make(MultiLogger, len(m))
	for i, l := range m {
		out[i] = l.WithComponent(component)
	}
	return out
}

var _ ports.Logger = MultiLogger(nil)
