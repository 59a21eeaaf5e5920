package ulogger

import (
	"github.com/ordishs/gocore"
)

// GoCoreLogger writes through gocore.Log. Its level is fixed when it is created.
type GoCoreLogger struct {
	*gocore.Logger
	service string
	skip    int
}

func NewGoCoreLogger(service string, options ...Option) *GoCoreLogger {
	if service == "" {
		service = defaultService
	}

	opts := applyOptions(options)

	return &GoCoreLogger{
		Logger:  gocore.Log(service, gocore.NewLogLevelFromString(levelByName(opts.logLevel).name)),
		service: service,
		skip:    opts.skip,
	}
}

// New keeps the parent's level for the child service.
func (g *GoCoreLogger) New(service string, options ...Option) Logger {
	return &GoCoreLogger{
		Logger:  gocore.Log(service, g.Logger.GetLogLevel()),
		service: service,
		skip:    applyOptions(options).skip,
	}
}

func (g *GoCoreLogger) Duplicate(options ...Option) Logger {
	dup := *g

	if skip := applyOptions(options).skip; skip != 0 {
		dup.skip = skip
	}

	return &dup
}

// SetLogLevel is a no-op; gocore loggers take their level at construction.
func (g *GoCoreLogger) SetLogLevel(_ string) {}
