// Zerolog-backed implementation of the Logger interface.
//
// The library logs through the Logger interface defined in interface.go;
// this file provides the default backend. The global zerolog logger is
// configured exactly once, and estimators obtain component-scoped loggers
// via GetLoggerWithName.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	qmlerrors "github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// Config captures options for configuring the global logger backend.
type Config struct {
	Level  string    // optional log level ("debug", "info", ...)
	Output io.Writer // optional writer (defaults to os.Stderr)
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once. Subsequent
// calls are no-ops, so libraries and applications can both call it safely.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.WarnLevel
		if cfg.Level != "" {
			if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
				level = parsed
			}
		} else if env := os.Getenv("QML_LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		// Mirror the level onto the stdlib slog default so code logging
		// through slog agrees with the zerolog backend.
		switch level {
		case zerolog.DebugLevel:
			SetupLogger("debug")
		case zerolog.InfoLevel:
			SetupLogger("info")
		case zerolog.ErrorLevel:
			SetupLogger("error")
		default:
			SetupLogger("warn")
		}

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}

		base = zerolog.New(writer).With().Timestamp().Logger()

		// Route library warnings (PSD projection, ill-defined metrics, ...)
		// through the structured logger.
		qmlerrors.SetZerologWarnFunc(func(warning error) {
			ev := base.Warn()
			if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
				ev.EmbedObject(obj).Msg("warning")
				return
			}
			ev.Err(warning).Msg("warning")
		})
	})
}

// GetLogger returns the default Logger. Configure is applied lazily with
// defaults if the caller never configured the backend explicitly.
func GetLogger() Logger {
	Configure(Config{})
	return &zerologLogger{logger: base}
}

// GetLoggerWithName returns a Logger scoped to one component.
func GetLoggerWithName(name string) Logger {
	Configure(Config{})
	return &zerologLogger{logger: base.With().Str(ComponentKey, name).Logger()}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...any) { z.emit(z.logger.Debug(), msg, fields) }
func (z *zerologLogger) Info(msg string, fields ...any)  { z.emit(z.logger.Info(), msg, fields) }
func (z *zerologLogger) Warn(msg string, fields ...any)  { z.emit(z.logger.Warn(), msg, fields) }

// Error handles a leading error value specially so stack traces from
// cockroachdb/errors survive into the structured output.
func (z *zerologLogger) Error(msg string, fields ...any) {
	ev := z.logger.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			fields = fields[1:]
		}
	}
	z.emit(ev, msg, fields)
}

// With implements Logger.With.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= zerolog.GlobalLevel()
}

func (z *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
