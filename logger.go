package difvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with difvec-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithGridShape adds the scan grid shape to the logger.
func (l *Logger) WithGridShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("grid_rows", rows, "grid_cols", cols),
	}
}

// WithThreshold adds a distance threshold field to the logger.
func (l *Logger) WithThreshold(threshold float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("threshold", threshold),
	}
}

// WithMethod adds a clustering method field to the logger.
func (l *Logger) WithMethod(method string) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method),
	}
}

// LogFilter logs a vector filter operation.
func (l *Logger) LogFilter(ctx context.Context, op string, before, after int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"op", op,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"op", op,
			"before", before,
			"after", after,
		)
	}
}

// LogConvert logs a detector-to-reciprocal conversion.
func (l *Logger) LogConvert(ctx context.Context, wavelength float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "coordinate conversion failed",
			"wavelength", wavelength,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "coordinate conversion completed",
			"wavelength", wavelength,
		)
	}
}

// LogMatch logs a basis matching operation.
func (l *Logger) LogMatch(ctx context.Context, basisSize int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "basis matching failed",
			"basis_size", basisSize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "basis matching completed",
			"basis_size", basisSize,
		)
	}
}

// LogUnique logs a unique-vector clustering operation. Method and threshold
// fields come from the logger itself via WithMethod/WithThreshold.
func (l *Logger) LogUnique(ctx context.Context, points, clusters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "unique vector clustering failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "unique vector clustering completed",
			"points", points,
			"clusters", clusters,
		)
	}
}

// LogFlatten logs a table export operation.
func (l *Logger) LogFlatten(rows int, err error) {
	if err != nil {
		l.Error("flatten failed",
			"error", err,
		)
	} else {
		l.Debug("flatten completed",
			"rows", rows,
		)
	}
}
