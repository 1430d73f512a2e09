package shorthand

import (
	"errors"
	"strings"
	"testing"

	"github.com/rbleattler/RegExRules/pattern"
)

func compile(t *testing.T, nodes []*pattern.Pattern) string {
	t.Helper()

	var sb strings.Builder

	for _, p := range nodes {
		s, err := p.ToRegex()
		if err != nil {
			t.Fatalf("ToRegex error: %v", err)
		}

		sb.WriteString(s)
	}

	return sb.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "class", input: "cc Digit", want: `\d`},
		{name: "class keyword", input: "class non-digit +", want: `\D+`},
		{name: "class token", input: `cc \w+`, want: `\w+`},
		{name: "class bracket", input: "cc [a-z]{2,3}", want: "[a-z]{2,3}"},
		{name: "class unicode", input: `cc \p{L}*`, want: `\p{L}*`},
		{name: "exact count", input: "cc digit{4}", want: `\d{4}`},
		{name: "lazy", input: "cc word+?", want: `\w+?`},
		{name: "anchor", input: "anchor ^ cc word + anchor $", want: `^\w+$`},
		{name: "anchor name", input: "at WordBoundary", want: `\b`},
		{name: "literal", input: `"a.b"`, want: `a\.b`},
		{name: "raw literal", input: "`x+y`?", want: `(?:x\+y)?`},
		{name: "literal yaml-like", input: `"key: value"`, want: "key: value"},
		{
			name:  "named group",
			input: "named year ( cc digit {4} )",
			want:  `(?<year>\d{4})`,
		},
		{
			name:  "nested groups",
			input: "group ( nc ( \"-\" cc digit{2} )? )+",
			want:  `((?:-\d{2})?)+`,
		},
		{
			name:  "comment",
			input: "cc digit # a digit\n cc word",
			want:  `\d\w`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}

			if got := compile(t, nodes); got != tt.want {
				t.Errorf("Parse(%q) compiles to %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "unknown keyword", input: "digit", want: ErrSyntax},
		{name: "unclosed group", input: "group ( cc digit", want: ErrSyntax},
		{name: "missing value", input: "cc", want: ErrSyntax},
		{name: "unknown class", input: "cc bogus", want: pattern.ErrInvalidArgument},
		{name: "class literal outside table", input: "cc [a-f]", want: pattern.ErrInvalidArgument},
		{name: "bad bounds", input: "cc digit{3,1}", want: pattern.ErrConstraint},
		{name: "bad group name", input: "named 9x ( )", want: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}
