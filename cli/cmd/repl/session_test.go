package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/rbleattler/RegExRules/pattern"
	"github.com/rbleattler/RegExRules/shorthand"
	"github.com/rbleattler/RegExRules/verify"
)

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		name   string
		engine string
		input  string
		want   string
	}{
		{name: "shorthand", input: `anchor ^ cc Word+ anchor $`, want: `^\w+$`},
		{name: "json", input: `{"Type":"CharacterClass","Value":"Digit","Quantifiers":{"Exactly":4}}`, want: `\d{4}`},
		{name: "yaml", input: "Type: Anchor\nValue: WordBoundary", want: `\b`},
		{name: "verified", engine: "re2", input: `cc Digit+`, want: `\d+  (re2 ok)`},
		{name: "regexp2 accepts", engine: "regexp2", input: `anchor EndOfStringOrNewline`, want: `\Z  (regexp2 ok)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{}
			if err := s.setEngine(tt.engine); err != nil {
				t.Fatalf("setEngine(%q) error: %v", tt.engine, err)
			}

			got, err := s.eval(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("eval(%q) error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSession_EvalErrors(t *testing.T) {
	tests := []struct {
		name   string
		engine string
		input  string
		want   error
	}{
		{name: "bad shorthand", input: "digit", want: shorthand.ErrSyntax},
		{name: "bad class", input: `{"Type":"CharacterClass","Value":"Nope"}`, want: pattern.ErrInvalidArgument},
		{name: "engine rejects", engine: "regexp", input: `anchor EndOfStringOrNewline`, want: verify.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{}
			if err := s.setEngine(tt.engine); err != nil {
				t.Fatalf("setEngine(%q) error: %v", tt.engine, err)
			}

			if _, err := s.eval(t.Context(), "cc Word"); err != nil {
				t.Fatalf("eval error: %v", err)
			}

			if _, err := s.eval(t.Context(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("eval(%q) error = %v, want %v", tt.input, err, tt.want)
			}

			// A failed line keeps the previous rule.
			if got, _ := s.compiled(); !strings.HasPrefix(got, `\w`) {
				t.Errorf("compiled() = %q after failure, want previous rule", got)
			}
		})
	}
}

func TestSession_SetEngine(t *testing.T) {
	s := &session{}

	if err := s.setEngine("RE2"); err != nil || s.engine != verify.RE2 {
		t.Errorf("setEngine(RE2) = %v, engine %q", err, s.engine)
	}

	if err := s.setEngine("off"); err != nil || s.engine != "" {
		t.Errorf("setEngine(off) = %v, engine %q", err, s.engine)
	}

	if err := s.setEngine("pcre"); !errors.Is(err, verify.ErrUnknownEngine) {
		t.Errorf("setEngine(pcre) error = %v, want ErrUnknownEngine", err)
	}
}

func TestSession_Document(t *testing.T) {
	s := &session{}

	if _, err := s.document(t.Context()); !errors.Is(err, ErrNoRule) {
		t.Errorf("document() error = %v, want ErrNoRule", err)
	}

	if _, err := s.compiled(); !errors.Is(err, ErrNoRule) {
		t.Errorf("compiled() error = %v, want ErrNoRule", err)
	}

	if _, err := s.eval(t.Context(), "cc Digit{4}"); err != nil {
		t.Fatalf("eval error: %v", err)
	}

	doc, err := s.document(t.Context())
	if err != nil {
		t.Fatalf("document() error: %v", err)
	}

	for _, want := range []string{"Type: CharacterClass", `\d`} {
		if !strings.Contains(doc, want) {
			t.Errorf("document() = %q, want it to contain %q", doc, want)
		}
	}

	// The document parses back to the same expression.
	rule, err := s.parse(t.Context(), doc)
	if err != nil {
		t.Fatalf("parse(document) error: %v", err)
	}

	if got, _ := rule.Compile(); got != `\d{4}` {
		t.Errorf("round trip Compile() = %q, want %q", got, `\d{4}`)
	}
}

func TestTable(t *testing.T) {
	got := table(pattern.Anchors)

	lines := strings.Split(got, "\n")
	if len(lines) != pattern.Anchors.Len() {
		t.Fatalf("table(Anchors) has %d lines, want %d", len(lines), pattern.Anchors.Len())
	}

	first := strings.Fields(lines[0])
	if !strings.HasPrefix(lines[0], "  StartOfLine") || len(first) != 2 || first[1] != "^" {
		t.Errorf("first line = %q", lines[0])
	}

	// Tokens share one column.
	col := strings.Index(lines[0], "^")
	for _, line := range lines[1:] {
		if len(line) <= col || line[col-1] != ' ' || line[col] == ' ' {
			t.Errorf("token not aligned at column %d: %q", col, line)
		}
	}
}
