package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Attribute keys shared by the slog path and the stacktrace handler.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs a JSON slog default logger whose records carry
// cockroachdb/errors stack traces in a dedicated attribute. Configure
// calls it, so code that logs through the standard library's slog agrees
// with the zerolog backend on verbosity.
func SetupLogger(loglevel string) {
	opts := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &opts)
	slog.SetDefault(slog.New(WithStacktraces(handler)))
}

// ToLogLevel maps a level name onto the corresponding slog level. Unknown
// names panic; level strings reach here from configuration the caller has
// already validated.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr passes an error to slog under the key the stacktrace handler
// watches for.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
