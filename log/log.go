package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger is an immutable structured logger. The zero value discards all
// messages, so it can be embedded in types whose logging is optional.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a [Logger] that writes to w with the default configuration
// overridden by opts.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// Wrap returns a new [Logger] whose configuration is a copy of l's with
// opts applied. Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.Logger == nil {
		return Make(nil, opts...)
	}

	cfg := l.apply(opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// With returns a new [Logger] that adds attrs to every message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil || len(attrs) == 0 {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		config: l.config,
	}
}

// Level returns the minimum level of messages that are written.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

// TraceContext logs at [LevelTrace].
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelTrace, msg, attrs)
}

// Trace logs at [LevelTrace] with [DefaultContextProvider].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelTrace, msg, attrs)
}

// DebugContext logs at [LevelDebug].
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelDebug, msg, attrs)
}

// Debug logs at [LevelDebug] with [DefaultContextProvider].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelDebug, msg, attrs)
}

// InfoContext logs at [LevelInfo].
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelInfo, msg, attrs)
}

// Info logs at [LevelInfo] with [DefaultContextProvider].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelInfo, msg, attrs)
}

// WarnContext logs at [LevelWarn].
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelWarn, msg, attrs)
}

// Warn logs at [LevelWarn] with [DefaultContextProvider].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelWarn, msg, attrs)
}

// ErrorContext logs at [LevelError].
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelError, msg, attrs)
}

// Error logs at [LevelError] with [DefaultContextProvider].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelError, msg, attrs)
}

// log must be called directly from an exported method so the frame skip
// resolves to the caller of that method.
func (l Logger) log(ctx context.Context, level Level, msg string, attrs []slog.Attr) {
	l.logDepth(ctx, 3, level, msg, attrs)
}

// logDepth records the frame skip levels above itself as the source.
func (l Logger) logDepth(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr

	if l.caller {
		var pcs [1]uintptr

		runtime.Callers(skip+1, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
