package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{name: "empty", input: "", want: map[string]any{}},
		{
			name:  "scalars",
			input: "log-level: debug\nlog-pretty: true\nindent: 4\n",
			want:  map[string]any{"log-level": "debug", "log-pretty": true, "indent": "4"},
		},
		{
			name:  "underscores",
			input: "log_format: json\n",
			want:  map[string]any{"log-format": "json"},
		},
		{
			name:  "sequence",
			input: "source:\n  - a.yml\n  - b.yml\n",
			want:  map[string]any{"source": "a.yml,b.yml"},
		},
		{
			name:  "json",
			input: `{"log-level": "warn", "log-caller": false}`,
			want:  map[string]any{"log-level": "warn", "log-caller": false},
		},
		{name: "not a mapping", input: "- a\n- b\n", want: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("resolve error: %v", err)
			}

			got := r.(config)
			if len(got) != len(tt.want) {
				t.Fatalf("resolve = %v, want %v", got, tt.want)
			}

			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("resolve[%q] = %#v, want %#v", k, got[k], v)
				}
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	c := config{"log-level": "debug"}

	got, err := c.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "log-level"}})
	if err != nil || got != "debug" {
		t.Errorf("Resolve(log-level) = %v, %v", got, err)
	}

	got, err = c.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "verify"}})
	if err != nil || got != nil {
		t.Errorf("Resolve(verify) = %v, %v; want nil", got, err)
	}
}

// Configuration values apply to kong flags and command-line flags win.
func TestResolve_Kong(t *testing.T) {
	var cli struct {
		Level  string `default:"info"`
		Pretty bool
		Names  []string
	}

	parser, err := kong.New(&cli,
		kong.Resolvers(config{"level": "debug", "pretty": true, "names": "a,b"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(nil); err != nil {
		t.Fatal(err)
	}

	if cli.Level != "debug" || !cli.Pretty || strings.Join(cli.Names, "|") != "a|b" {
		t.Errorf("resolved = %+v", cli)
	}

	if _, err := parser.Parse([]string{"--level=warn"}); err != nil {
		t.Fatal(err)
	}

	if cli.Level != "warn" {
		t.Errorf("Level = %q, want command-line value warn", cli.Level)
	}
}
