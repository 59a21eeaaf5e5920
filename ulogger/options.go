package ulogger

import (
	"io"
	"os"

	"github.com/ordishs/gocore"
)

type Options struct {
	logLevel   string
	loggerType string
	writer     io.Writer
	skip       int
	pretty     bool
}

type Option func(*Options)

// DefaultOptions logs INFO and above to stdout through zerolog. Console formatting follows the
// PRETTY_LOGS config key.
func DefaultOptions() *Options {
	return &Options{
		logLevel:   "INFO",
		loggerType: "zerolog",
		writer:     os.Stdout,
		pretty:     gocore.Config().GetBool("PRETTY_LOGS", true),
	}
}

func applyOptions(options []Option) *Options {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	return opts
}

func WithLevel(level string) Option {
	return func(o *Options) {
		o.logLevel = level
	}
}

// WithLoggerType selects the implementation returned by New: "zerolog" (default) or "gocore".
func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}

func WithSkipFrame(skip int) Option {
	return func(o *Options) {
		o.skip = skip
	}
}

// WithPretty switches between console formatting and one JSON object per line.
func WithPretty(pretty bool) Option {
	return func(o *Options) {
		o.pretty = pretty
	}
}
