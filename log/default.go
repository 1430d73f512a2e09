package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// DefaultContextProvider returns the context used by logging calls that
// do not take one.
var DefaultContextProvider = context.TODO

var defaultLog atomic.Pointer[Logger]

func init() {
	SetDefault(Make(os.Stderr))
}

// Default returns the package-level logger.
func Default() Logger { return *defaultLog.Load() }

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) { defaultLog.Store(&l) }

// Config reconfigures the package-level logger with opts.
func Config(opts ...Option) {
	SetDefault(Default().Wrap(opts...))
}

// With returns a copy of the package-level logger that adds attrs to every
// message.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

// TraceContext logs at [LevelTrace] with the package-level logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 2, LevelTrace, msg, attrs)
}

// Trace logs at [LevelTrace] with the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 2, LevelTrace, msg, attrs)
}

// DebugContext logs at [LevelDebug] with the package-level logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 2, LevelDebug, msg, attrs)
}

// Debug logs at [LevelDebug] with the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 2, LevelDebug, msg, attrs)
}

// InfoContext logs at [LevelInfo] with the package-level logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 2, LevelInfo, msg, attrs)
}

// Info logs at [LevelInfo] with the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 2, LevelInfo, msg, attrs)
}

// WarnContext logs at [LevelWarn] with the package-level logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 2, LevelWarn, msg, attrs)
}

// Warn logs at [LevelWarn] with the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 2, LevelWarn, msg, attrs)
}

// ErrorContext logs at [LevelError] with the package-level logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 2, LevelError, msg, attrs)
}

// Error logs at [LevelError] with the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 2, LevelError, msg, attrs)
}
