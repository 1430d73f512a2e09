package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFiles creates files under a temp directory and returns their paths
// in the order given.
func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, len(contents))

	for i, c := range contents {
		paths[i] = filepath.Join(dir, "rule"+string(rune('a'+i))+".yml")
		if err := os.WriteFile(paths[i], []byte(c), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return paths
}

// testContext returns a context reading stdin from in and the buffer
// commands write results to.
func testContext(t *testing.T, in string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithOutput(t.Context(), &out)
	ctx = WithInput(ctx, strings.NewReader(in))

	return ctx, &out
}

func TestOpenSources(t *testing.T) {
	paths := writeFiles(t, "a", "b")

	link := filepath.Join(filepath.Dir(paths[0]), "link.yml")
	if err := os.Symlink(paths[0], link); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "empty reads stdin", names: nil, want: []string{"-"}},
		{name: "ordered", names: []string{paths[1], paths[0]}, want: []string{paths[1], paths[0]}},
		{name: "duplicate path", names: []string{paths[0], paths[0]}, want: []string{paths[0]}},
		{name: "symlink", names: []string{paths[0], link, paths[1]}, want: []string{paths[0], paths[1]}},
		{name: "stdin once", names: []string{"-", paths[0], "-"}, want: []string{"-", paths[0]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t, "stdin")

			srcs, err := openSources(ctx, tt.names)
			if err != nil {
				t.Fatalf("openSources error: %v", err)
			}
			defer closeSources(srcs)

			got := make([]string, len(srcs))
			for i, s := range srcs {
				got[i] = s.name
			}

			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("sources = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpenSources_Missing(t *testing.T) {
	ctx, _ := testContext(t, "")

	_, err := openSources(ctx, []string{filepath.Join(t.TempDir(), "nope.yml")})
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("openSources error = %v, want ErrOpenSource", err)
	}
}

func TestOpenSources_StdinContent(t *testing.T) {
	ctx, _ := testContext(t, "from stdin")

	srcs, err := openSources(ctx, []string{"-"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeSources(srcs)

	data, err := io.ReadAll(srcs[0])
	if err != nil || string(data) != "from stdin" {
		t.Errorf("stdin source = %q, %v", data, err)
	}
}
