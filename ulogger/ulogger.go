// Package ulogger is the logging facade used by every component of the transaction handler.
//
// New returns a zerolog backed logger unless the gocore type is requested. Tests use
// TestLogger to discard output or VerboseTestLogger to route it through testing.TB.
package ulogger

type Logger interface {
	LogLevel() int
	SetLogLevel(level string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	New(service string, options ...Option) Logger
	Duplicate(options ...Option) Logger
}

const defaultService = "txhandler"

// New builds a logger for service, honouring WithLoggerType.
func New(service string, options ...Option) Logger {
	if service == "" {
		service = defaultService
	}

	if applyOptions(options).loggerType == "gocore" {
		return NewGoCoreLogger(service, options...)
	}

	return NewZeroLogger(service, options...)
}
