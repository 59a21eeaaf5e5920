package ulogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBlue   = 34
	colorWhite  = 37
	colorBold   = 1
)

// ZLoggerWrapper adapts zerolog to Logger. The options it was built with are kept so that
// New and Duplicate produce siblings writing to the same place in the same format.
type ZLoggerWrapper struct {
	zerolog.Logger
	service string
	opts    Options
}

func NewZeroLogger(service string, options ...Option) *ZLoggerWrapper {
	if service == "" {
		service = defaultService
	}

	opts := applyOptions(options)

	var ctx zerolog.Context
	if opts.pretty {
		ctx = zerolog.New(newConsoleWriter(opts.writer, service)).With()
	} else {
		ctx = zerolog.New(opts.writer).With().Str("service", service)
	}

	z := &ZLoggerWrapper{
		Logger:  ctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1 + opts.skip).Timestamp().Logger(),
		service: service,
		opts:    *opts,
	}

	z.SetLogLevel(opts.logLevel)

	return z
}

func newConsoleWriter(w io.Writer, service string) zerolog.ConsoleWriter {
	noColor := true
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
		FormatLevel: func(i interface{}) string {
			name := fmt.Sprintf("%-6s", strings.ToUpper(fmt.Sprint(i)))
			return "| " + colorize(name, levelColor(fmt.Sprint(i)), noColor) + "|"
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("| %-9s| %v", service, i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatCaller: func(i interface{}) string {
			return colorize(fmt.Sprintf("%-28s", shortCaller(fmt.Sprint(i))), colorBold, noColor)
		},
	}
}

// shortCaller trims a caller path to its parent directory and file, e.g. validator/TxValidator.go:120.
func shortCaller(c string) string {
	if c == "" || c == "<nil>" {
		return ""
	}

	return filepath.Join(filepath.Base(filepath.Dir(c)), filepath.Base(c))
}

func levelColor(l string) int {
	switch l {
	case "debug":
		return colorBlue
	case "info":
		return colorGreen
	case "warn":
		return colorYellow
	case "error", "fatal", "panic":
		return colorRed
	default:
		return colorWhite
	}
}

func colorize(s string, c int, disabled bool) string {
	if disabled {
		return s
	}

	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

// New returns a logger for another service with this logger's writer, format and level.
// Options override the inherited values.
func (z *ZLoggerWrapper) New(service string, options ...Option) Logger {
	inherited := []Option{
		WithWriter(z.opts.writer),
		WithPretty(z.opts.pretty),
		WithSkipFrame(z.opts.skip),
		WithLevel(levelByZerolog(z.Logger.GetLevel()).name),
	}

	return NewZeroLogger(service, append(inherited, options...)...)
}

func (z *ZLoggerWrapper) Duplicate(options ...Option) Logger {
	return z.New(z.service, options...)
}

// SetLogLevel falls back to INFO for names it does not know.
func (z *ZLoggerWrapper) SetLogLevel(logLevel string) {
	z.Logger = z.Logger.Level(levelByName(logLevel).zerolog)
}

func (z *ZLoggerWrapper) LogLevel() int {
	return levelByZerolog(z.Logger.GetLevel()).gocore
}

func (z *ZLoggerWrapper) Debugf(format string, args ...interface{}) {
	z.Logger.Debug().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Infof(format string, args ...interface{}) {
	z.Logger.Info().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Warnf(format string, args ...interface{}) {
	z.Logger.Warn().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Errorf(format string, args ...interface{}) {
	z.Logger.Error().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Fatalf(format string, args ...interface{}) {
	z.Logger.Fatal().Msgf(format, args...)
}
