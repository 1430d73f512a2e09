package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/pattern"
)

func TestSchemaRun(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Schema
		kinds []string
	}{
		{name: "all yaml", cmd: Schema{Format: "yaml"}, kinds: []string{"Literal", "CharacterClass", "Anchor", "Group"}},
		{name: "all json", cmd: Schema{Format: "json"}, kinds: []string{"Literal", "CharacterClass", "Anchor", "Group"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, "")

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run error: %v", err)
			}

			var got []pattern.Descriptor

			var err error
			if tt.cmd.Format == "json" {
				err = json.Unmarshal(out.Bytes(), &got)
			} else {
				err = yaml.Unmarshal(out.Bytes(), &got)
			}

			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			types := make([]string, len(got))
			for i, d := range got {
				types[i] = d.Type
			}

			if strings.Join(types, ",") != strings.Join(tt.kinds, ",") {
				t.Errorf("types = %v, want %v", types, tt.kinds)
			}
		})
	}
}

func TestSchemaRun_Type(t *testing.T) {
	ctx, out := testContext(t, "")

	if err := (&Schema{Format: "yaml", Type: "group"}).Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	for _, want := range []string{"Type: Group", "GroupType", "Patterns"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}

	if err := (&Schema{Format: "yaml", Type: "bogus"}).Run(ctx); !errors.Is(err, pattern.ErrInvalidArgument) {
		t.Errorf("Run(bogus) error = %v, want ErrInvalidArgument", err)
	}
}
