package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
	output io.Writer
)

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// Init initializes the logging system with zerolog.
// A nil writer logs human-readable lines to stderr.
func Init(w io.Writer) {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}
	output = w

	// Set global level to Info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure field names
	zerolog.MessageFieldName = "msg"

	// Create logger with hook that adds timestamp last
	Logger = zerolog.New(output).Hook(timestampHook{})
}

// SetNoColor disables ANSI colors on the console writer
func SetNoColor(noColor bool) {
	if cw, ok := output.(zerolog.ConsoleWriter); ok {
		cw.NoColor = noColor
		output = cw
		Logger = Logger.Output(cw)
	}
}

// SetDebug toggles debug level logging
func SetDebug(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// With attaches a field to every later event, e.g. the run id.
// The returned func puts the previous logger back.
func With(key, value string) (restore func()) {
	prev := Logger
	Logger = Logger.With().Str(key, value).Logger()
	return func() { Logger = prev }
}

// Close stops logging
func Close() {
	Logger = zerolog.Nop()
	output = nil
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
