package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w. Verbose lowers the level to
// debug, quiet raises it to error (quiet wins), and jsonOut switches to
// the JSON formatter for machine consumption.
func newLogger(w io.Writer, verbose, quiet, jsonOut bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}
	if jsonOut {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

// ctxKey is a private context key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches a logger to the context for retrieval with
// loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, or log.Default()
// when the context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
