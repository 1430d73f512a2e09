package pattern

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{name: "empty", input: "", want: FormatEmpty},
		{name: "blank", input: " \t\n ", want: FormatEmpty},
		{name: "json object", input: `{"Value":"x"}`, want: FormatJSON},
		{name: "json padded", input: "  {}\n", want: FormatJSON},
		{name: "canonical token", input: `\d`, want: FormatLiteral},
		{name: "token with colon", input: `\d: x`, want: FormatLiteral},
		{name: "yaml mapping", input: "Type: Anchor\nValue: WordBoundary", want: FormatYAML},
		{name: "yaml key at end of line", input: "Value:", want: FormatYAML},
		{name: "yaml key indented", input: "  Min: 1", want: FormatYAML},
		{name: "yaml sequence item", input: "- Type: Literal", want: FormatYAML},
		{name: "plain text", input: "hello", want: FormatLiteral},
		{name: "colon without space", input: "a:b", want: FormatLiteral},
		{name: "url", input: "http://example.com", want: FormatLiteral},
		{name: "quoted key", input: `"a": b`, want: FormatLiteral},
		{name: "unterminated brace", input: "{abc", want: FormatLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	for f, want := range map[Format]string{
		FormatEmpty:   "empty",
		FormatJSON:    "json",
		FormatYAML:    "yaml",
		FormatLiteral: "literal",
		Format(42):    "Format(42)",
	} {
		if got := f.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}
