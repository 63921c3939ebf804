package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// LogWriter adapts zerolog logger to io.Writer, every write is an info message
//
// gin request logs are routed through it.
type LogWriter struct {
	Logger zerolog.Logger
}

func (lw LogWriter) Write(bs []byte) (int, error) {
	msg := strings.TrimRight(string(bs), "\n")
	lw.Logger.Info().Msg(msg)
	return len(bs), nil
}

// SetupLogger configures global logger according to logFormat ("json" or "default")
func SetupLogger(format, levelStr string, w io.Writer) {
	if format == "json" {
		SetupJSONLogger(levelStr, w)
	} else {
		SetupDefaultLogger(levelStr, w)
	}
}

// SetupJSONLogger makes global logger emit one json object per line
func SetupJSONLogger(levelStr string, w io.Writer) {
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"

	var tsHook timestampHook
	log.Logger = zerolog.New(w).
		Hook(&tsHook).
		Level(GetLogLevelOrDebug(levelStr))
}

// SetupDefaultLogger makes global logger print human readable lines, colored
// when w is a terminal
func SetupDefaultLogger(levelStr string, w io.Writer) {
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: noColor}).
		Level(GetLogLevelOrDebug(levelStr)).
		With().
		Timestamp().
		Logger()
}

// GetLogLevelOrDebug parses level name, "warning" is accepted as alias of "warn"
func GetLogLevelOrDebug(levelStr string) zerolog.Level {
	levelStr = strings.ToLower(levelStr)
	if levelStr == "warning" {
		levelStr = "warn"
	}

	var level zerolog.Level

	err := level.UnmarshalText([]byte(levelStr))
	if err == nil {
		return level
	}

	log.Warn().Msgf("Unknown log level '%s', defaulting to debug", levelStr)
	return zerolog.DebugLevel
}

type timestampHook struct{}

func (h *timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("time", time.Now().Format(time.RFC3339))
}
