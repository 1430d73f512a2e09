package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPackageFunctions(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer

	SetDefault(Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON), WithCaller(true)))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", ctxFunc(TraceContext), "TRACE"},
		{"DebugContext", ctxFunc(DebugContext), "DEBUG"},
		{"InfoContext", ctxFunc(InfoContext), "INFO"},
		{"WarnContext", ctxFunc(WarnContext), "WARN"},
		{"ErrorContext", ctxFunc(ErrorContext), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			for _, want := range []string{`"level":"` + tt.level + `"`, `"key":"value"`, "default_test.go"} {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func ctxFunc(fn func(context.Context, string, ...slog.Attr)) func(string, ...slog.Attr) {
	return func(msg string, attrs ...slog.Attr) { fn(context.Background(), msg, attrs...) }
}

func TestConfig_Reconfigures(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer

	SetDefault(Make(&buf, WithLevel(LevelError)))
	Info("hidden")

	Config(WithLevel(LevelInfo))
	With(slog.String("cmd", "compile")).Info("shown")

	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "cmd=compile") {
		t.Errorf("unexpected output %q", got)
	}
}
