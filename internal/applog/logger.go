// Package applog wraps github.com/rs/zerolog into the logging shape the
// HTTP driver (internal/api, cmd/roundtable-server) uses; the CLI driver
// and the core scheduling pipeline, localsearch.Engine included, never
// import this package (§9:
// "the core has none" of logging, metrics, or config).
package applog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is a logging verbosity level.
type Level string

// The four levels Config.Level accepts.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is the rendering format for log lines.
type Format string

// The two formats Config.Format accepts.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger is a structured logger over zerolog.Logger.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg. A zero-value cfg produces an info-level
// JSON logger writing to stdout.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var writer io.Writer = out
	if cfg.Format == FormatText {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	z := zerolog.New(writer).With().Timestamp().Logger()
	z = z.Level(levelOf(cfg.Level))

	return &Logger{z: z}
}

func levelOf(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// With returns a child Logger carrying an additional string field — the
// correlation-id habit this repository's HTTP and CLI drivers use to
// thread a request id through every log line of one call.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{z: l.z.With().Str(key, value).Logger()}
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.z.Debug().Msg(msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.z.Info().Msg(msg) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) { l.z.Warn().Msg(msg) }

// Error logs msg at error level, attaching err.
func (l *Logger) Error(msg string, err error) { l.z.Error().Err(err).Msg(msg) }

// InfoFields logs msg at info level with the given key/value pairs, e.g.
// InfoFields("schedule completed", "solver_status", string(status),
// "objective_value", objective).
func (l *Logger) InfoFields(msg string, kv ...interface{}) {
	addFields(l.z.Info(), kv...).Msg(msg)
}

// DebugFields logs msg at debug level with the given key/value pairs.
func (l *Logger) DebugFields(msg string, kv ...interface{}) {
	addFields(l.z.Debug(), kv...).Msg(msg)
}

func addFields(event *zerolog.Event, kv ...interface{}) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, kv[i+1])
	}
	return event
}
