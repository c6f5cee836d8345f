package sortdist

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/sortdist/column"
	"github.com/hupe1980/sortdist/distance"
)

// Logger wraps slog.Logger with sortdist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRunID adds a run ID field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithInput adds an input name field to the logger.
func (l *Logger) WithInput(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("input", name),
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(k distance.Kernel) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", k.String()),
	}
}

// LogLoad logs the loading of an input.
func (l *Logger) LogLoad(ctx context.Context, stats column.Stats, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"bytes", stats.Bytes,
			"compression", stats.Compression.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"records", stats.Records,
			"bytes", stats.Bytes,
			"compression", stats.Compression.String(),
			"mapped", stats.Mapped,
			"duration", d,
		)
	}
}

// LogCompute logs a kernel invocation.
func (l *Logger) LogCompute(ctx context.Context, n int, result int64, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute failed",
			"n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compute completed",
			"n", n,
			"distance", result,
			"duration", d,
		)
	}
}

// LogRun logs the completion of a multi-input run.
func (l *Logger) LogRun(ctx context.Context, total, failed int, d time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "run completed with failures",
			"total", total,
			"failed", failed,
			"success", total-failed,
			"duration", d,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"total", total,
			"duration", d,
		)
	}
}
