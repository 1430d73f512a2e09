package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/rbleattler/RegExRules/rules"
)

func TestFmtJSON(t *testing.T) {
	ctx, out := testContext(t, "Id: start\nType: Anchor\nValue: \"^\"\n")

	f := &FmtJSON{Indent: 0, Source: "-"}
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got, want := out.String(), `{"Id":"start","Type":"Anchor","Value":"^"}`+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFmtYAML(t *testing.T) {
	ctx, out := testContext(t, `[{"Type":"Literal","Value":"id-"},{"Type":"Anchor","Value":"$"}]`)

	f := &FmtYAML{Indent: 2, Source: "-"}
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"- Id: ", "Type: Literal", "Value: id-", "Type: Anchor"} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want it to contain %q", got, want)
		}
	}

	// Formatted output is itself a valid rule document.
	rule, err := rules.ParseString(t.Context(), got)
	if err != nil {
		t.Fatalf("ParseString(output) error: %v", err)
	}

	if expr, _ := rule.Compile(); expr != "id-$" {
		t.Errorf("Compile() = %q, want %q", expr, "id-$")
	}
}

func TestFmt_DecodeError(t *testing.T) {
	ctx, _ := testContext(t, `{"Type":"Nope"}`)

	f := &FmtYAML{Source: "-"}
	if err := f.Run(ctx); !errors.Is(err, rules.ErrDecode) {
		t.Errorf("Run error = %v, want ErrDecode", err)
	}
}
