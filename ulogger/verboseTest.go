package ulogger

import (
	"fmt"
	"sync"
	"testing"
)

// VerboseTestLogger sends log lines to the test's own output so they show up with -v or when the
// test fails. Unlike the other loggers it honours SetLogLevel at any time, and Fatalf fails the test.
type VerboseTestLogger struct {
	tb      testing.TB
	service string
	mu      *sync.Mutex
	level   *level
}

// NewVerboseTestLogger logs everything at DEBUG and above until SetLogLevel says otherwise.
func NewVerboseTestLogger(tb testing.TB) *VerboseTestLogger {
	l := levels[0]

	return &VerboseTestLogger{tb: tb, service: defaultService, mu: &sync.Mutex{}, level: &l}
}

func (l *VerboseTestLogger) LogLevel() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level.gocore
}

func (l *VerboseTestLogger) SetLogLevel(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	*l.level = levelByName(name)
}

// New shares the level and the lock with l; only the service tag differs.
func (l *VerboseTestLogger) New(service string, _ ...Option) Logger {
	return &VerboseTestLogger{tb: l.tb, service: service, mu: l.mu, level: l.level}
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l.New(l.service, options...)
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.log(levels[0], format, args)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.log(levels[1], format, args)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.log(levels[2], format, args)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.log(levels[3], format, args)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.tb.Helper()
	l.tb.Fatalf("[FATAL][%s] %s", l.service, fmt.Sprintf(format, args...))
}

func (l *VerboseTestLogger) log(at level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if at.zerolog < l.level.zerolog {
		return
	}

	l.tb.Helper()
	l.tb.Logf("[%s][%s] %s", at.name, l.service, fmt.Sprintf(format, args...))
}
