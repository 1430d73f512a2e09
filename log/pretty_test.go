package log

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

var ansi = regexp.MustCompile("\033\\[[0-9;]*m")

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

type secret string

func (secret) LogValue() slog.Value { return slog.StringValue("***") }

func TestPrettyText(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithTimeLayout("none")).
		With(slog.String("rule", "date"))

	l.Logger = l.WithGroup("node")
	l.Warn("bad value",
		slog.Int("index", 2),
		slog.Bool("ok", false),
		slog.Any("token", secret("x")),
		slog.Group("quantifier", slog.Int("min", 3), slog.Int("max", 1)),
		slog.Any("error", errors.New("boom")),
	)

	got := plain(buf.String())
	want := "level=WARN msg=bad value rule=date node.index=2 node.ok=false " +
		"node.token=*** node.quantifier.min=3 node.quantifier.max=1 node.error=boom\n"

	if got != want {
		t.Errorf("output\n got %q\nwant %q", got, want)
	}

	if !strings.Contains(buf.String(), colorYellow+"WARN") {
		t.Errorf("level not colorized: %q", buf.String())
	}
}

func TestPrettyJSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithFormat(FormatJSON), WithTimeLayout("none"))
	l.Info("compiled", slog.String("regex", `\d{4}`), slog.Any("kinds", []string{"Literal"}))

	want := "{\n" +
		`  "level": "INFO",` + "\n" +
		`  "msg": "compiled",` + "\n" +
		`  "regex": "\\d{4}",` + "\n" +
		`  "kinds": ["Literal"]` + "\n" +
		"}\n"

	if got := plain(buf.String()); got != want {
		t.Errorf("output\n got %q\nwant %q", got, want)
	}
}

func TestPretty_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithLevel(LevelWarn))
	l.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("info written at warn level: %q", buf.String())
	}
}
