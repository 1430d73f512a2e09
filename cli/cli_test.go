package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rbleattler/RegExRules/cli/cmd"
	"github.com/rbleattler/RegExRules/log"
)

// The configuration and cache directories are resolved once per process, so
// every case runs under the same temporary home.
func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	defer log.SetDefault(log.Default())

	exited := -1
	exit := func(code int) { exited = code }

	invoke := func(t *testing.T, stdin string, args ...string) (string, error) {
		t.Helper()

		var out bytes.Buffer

		err := run(t.Context(), exit, &out, strings.NewReader(stdin),
			append([]string{"--log-level=error"}, args...)...)

		return out.String(), err
	}

	t.Run("default compile", func(t *testing.T) {
		got, err := invoke(t, `{"Type":"CharacterClass","Value":"Digit","Quantifiers":{"Min":1}}`)
		if err != nil {
			t.Fatalf("run error: %v", err)
		}

		if got != "\\d+\n" {
			t.Errorf("output = %q, want %q", got, "\\d+\n")
		}
	})

	t.Run("compile shorthand", func(t *testing.T) {
		got, err := invoke(t, "anchor ^ cc Word{2,3}", "compile", "--shorthand", "-")
		if err != nil {
			t.Fatalf("run error: %v", err)
		}

		if got != "^\\w{2,3}\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("version", func(t *testing.T) {
		got, err := invoke(t, "", "version")
		if err != nil || !strings.HasPrefix(got, "regexrules ") {
			t.Errorf("version = %q, %v", got, err)
		}
	})

	t.Run("classes", func(t *testing.T) {
		got, err := invoke(t, "", "classes", "--only=anchor")
		if err != nil || !strings.Contains(got, "WordBoundary") || strings.Contains(got, "HexDigit") {
			t.Errorf("classes = %q, %v", got, err)
		}
	})

	t.Run("configuration file", func(t *testing.T) {
		path := configPath(baseConfig)
		if err := os.WriteFile(path, []byte("verify: regexp\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(path)

		_, err := invoke(t, "Type: Anchor\nValue: EndOfStringOrNewline", "compile")
		if !errors.Is(err, cmd.ErrVerify) {
			t.Errorf("run error = %v, want ErrVerify from configured engine", err)
		}

		got, err := invoke(t, "Type: Anchor\nValue: EndOfStringOrNewline", "compile", "--verify=regexp2")
		if err != nil || got != "\\Z\n" {
			t.Errorf("command-line override = %q, %v", got, err)
		}
	})

	t.Run("init", func(t *testing.T) {
		path := configPath(baseConfig)
		defer os.Remove(path)

		if _, err := invoke(t, "", "--log-format=json", "init"); err != nil {
			t.Fatalf("init error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(string(data), "log-format: json") {
			t.Errorf("config.yaml = %q", data)
		}

		if _, err := invoke(t, "", "init"); !errors.Is(err, cmd.ErrFileExists) {
			t.Errorf("second init error = %v, want ErrFileExists", err)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, err := invoke(t, "", "--bogus"); err == nil {
			t.Error("run with unknown flag succeeded")
		}
	})

	if exited != -1 {
		t.Errorf("exit called with %d", exited)
	}
}
