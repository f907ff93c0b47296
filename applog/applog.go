// Package applog provides the named, per-component loggers the engine
// wires into its subsystems: a component-scoped structured logger
// built on github.com/rs/zerolog.
package applog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the minimal surface the engine's components depend on.
// Named loggers tag every line with a "component" field, and the
// global level filters across all of them uniformly.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Debug(msg string)
}

type zlogger struct {
	l zerolog.Logger
}

// New returns a Logger tagging every line with component.
func New(component string, w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	l := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &zlogger{l: l}
}

// SetLevel parses a level name (debug, info, warn, error) and sets it
// as the process-wide minimum. Unrecognized names fall back to info.
func SetLevel(name string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func (z *zlogger) Info(msg string)    { z.l.Info().Msg(msg) }
func (z *zlogger) Warning(msg string) { z.l.Warn().Msg(msg) }
func (z *zlogger) Error(msg string)   { z.l.Error().Msg(msg) }
func (z *zlogger) Debug(msg string)   { z.l.Debug().Msg(msg) }
