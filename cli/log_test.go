package cli

import (
	"testing"

	"github.com/rbleattler/RegExRules/log"
)

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantLevel  logLevel
		wantFormat logFormat
		wantPretty bool
		wantCaller bool
	}{
		{name: "none", args: []string{"compile", "a.yml"}},
		{name: "assigned", args: []string{"--log-level=debug", "--log-format=json"}, wantLevel: "debug", wantFormat: "json"},
		{name: "separate value", args: []string{"--log-level", "warn", "a.yml"}, wantLevel: "warn"},
		{name: "missing value", args: []string{"--log-level", "--log-pretty"}, wantPretty: true},
		{name: "bool flags", args: []string{"--log-pretty", "--log-caller=true"}, wantPretty: true, wantCaller: true},
		{name: "negated", args: []string{"--log-pretty", "--no-log-pretty"}},
		{name: "negated false", args: []string{"--no-log-caller=false"}, wantCaller: true},
		{name: "bad bool", args: []string{"--log-caller=maybe"}},
		{name: "after terminator", args: []string{"--", "--log-level=error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer log.SetDefault(log.Default())

			var f logConfig

			f.scan(tt.args)

			if f.Level != tt.wantLevel || f.Format != tt.wantFormat ||
				f.Pretty != tt.wantPretty || f.Caller != tt.wantCaller {
				t.Errorf("scan(%q) = %+v", tt.args, f)
			}
		})
	}
}

func TestLogConfig_Scan_ConfiguresLogger(t *testing.T) {
	defer log.SetDefault(log.Default())

	var f logConfig

	f.scan([]string{"--log-level=trace", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelTrace {
		t.Errorf("Level() = %v, want trace", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("Format() = %v, want json", got)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	want := map[string]string{
		"logLevelDefault":  "info",
		"logLevelEnum":     "trace,debug,info,warn,error",
		"logFormatDefault": "text",
		"logFormatEnum":    "text,json",
	}

	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q, want %q", k, vars[k], v)
		}
	}
}
