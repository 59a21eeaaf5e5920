package ulogger

import (
	"strings"

	"github.com/ordishs/gocore"
	"github.com/rs/zerolog"
)

// level ties a configured level name to its zerolog level and its gocore number.
// LogLevel on every Logger implementation reports the gocore number.
type level struct {
	name    string
	zerolog zerolog.Level
	gocore  int
}

var levels = []level{
	{"DEBUG", zerolog.DebugLevel, int(gocore.DEBUG)},
	{"INFO", zerolog.InfoLevel, int(gocore.INFO)},
	{"WARN", zerolog.WarnLevel, int(gocore.WARN)},
	{"ERROR", zerolog.ErrorLevel, int(gocore.ERROR)},
	{"FATAL", zerolog.FatalLevel, int(gocore.FATAL)},
}

const defaultLevel = 1 // INFO

func levelByName(name string) level {
	name = strings.ToUpper(strings.TrimSpace(name))

	for _, l := range levels {
		if l.name == name {
			return l
		}
	}

	return levels[defaultLevel]
}

func levelByZerolog(zl zerolog.Level) level {
	for _, l := range levels {
		if l.zerolog == zl {
			return l
		}
	}

	return levels[defaultLevel]
}
