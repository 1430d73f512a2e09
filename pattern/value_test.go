package pattern

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		nested bool
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "abc", want: "abc"},
		{name: "token", input: `\d+`, want: `\d+`},
		{name: "json wrapper", input: `{"Value":"abc"}`, want: "abc"},
		{name: "json missing key", input: `{}`, want: ""},
		{name: "json number", input: `{"Value": 3}`, want: "3"},
		{name: "json bool", input: `{"Value": true}`, want: "true"},
		{name: "json nested", input: `{"Value":{"Value":"x"}}`, want: "x", nested: true},
		{name: "yaml wrapper", input: "Value: foo", want: "foo"},
		{name: "yaml nested", input: "Value:\n  Value: bar", want: "bar", nested: true},
		{name: "yaml integer", input: "Value: 42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) error: %v", tt.input, err)
			}

			if v.IsNested() != tt.nested {
				t.Errorf("IsNested() = %v, want %v", v.IsNested(), tt.nested)
			}

			got, err := v.Resolve()
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	for _, input := range []string{
		`{"Value": }`,
		`{"Value": [1, 2]}`,
		"Value:\n  - a\n  - b",
	} {
		if _, err := ParseValue(input); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseValue(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestValue_ResolveDepth(t *testing.T) {
	chain := func(n int) Value {
		v := Literal("leaf")
		for range n {
			v = Nest(v)
		}

		return v
	}

	got, err := chain(MaxValueDepth).Resolve()
	if err != nil || got != "leaf" {
		t.Fatalf("Resolve at max depth = %q, %v; want leaf", got, err)
	}

	if _, err := chain(MaxValueDepth + 1).Resolve(); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Errorf("Resolve past max depth error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestValue_ResolveCycle(t *testing.T) {
	v := &Value{}
	v.nested = v

	if _, err := v.Resolve(); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Errorf("Resolve of cycle error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestValue_Equal(t *testing.T) {
	if !Nest(Literal("a")).Equal(Nest(Literal("a"))) {
		t.Errorf("equal nested values compare unequal")
	}

	if Nest(Literal("a")).Equal(Literal("a")) {
		t.Errorf("nested and terminal values compare equal")
	}

	if Literal("a").Equal(Literal("b")) {
		t.Errorf("distinct terminal values compare equal")
	}
}

func TestValue_Inner(t *testing.T) {
	inner, ok := Nest(Literal("x")).Inner()
	if !ok {
		t.Fatalf("Inner() of nested value reported terminal")
	}

	if s, _ := inner.Resolve(); s != "x" {
		t.Errorf("Inner().Resolve() = %q, want x", s)
	}

	if _, ok := Literal("x").Inner(); ok {
		t.Errorf("Inner() of terminal value reported nested")
	}
}

func TestValue_Unsupported(t *testing.T) {
	v := Literal("x")

	tests := map[string]func() error{
		"MarshalJSON":   func() error { _, err := v.MarshalJSON(); return err },
		"MarshalYAML":   func() error { _, err := v.MarshalYAML(); return err },
		"SerializeJSON": func() error { _, err := v.SerializeJSON(); return err },
		"SerializeYAML": func() error { _, err := v.SerializeYAML(); return err },
		"ToRegex":       func() error { _, err := v.ToRegex(); return err },
	}

	for name, call := range tests {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, ErrUnsupportedOperation) {
				t.Errorf("%s error = %v, want ErrUnsupportedOperation", name, err)
			}
		})
	}
}

func TestMustParseValue_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParseValue did not panic on malformed input")
		}
	}()

	MustParseValue(`{"Value": }`)
}
