package pattern

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MaxValueDepth bounds how many nested wrappers [Value.Resolve] follows.
//
// The decoder only ever produces one level of nesting for each wrapper
// object in the source text, so the limit is never reached by well-formed
// input.
const MaxValueDepth = 32

// valueKey is the wrapper object key holding the inner value.
const valueKey = "Value"

// Value is the payload of a pattern node: either a terminal string or
// exactly one nested Value.
//
// The zero Value is the empty terminal string.
type Value struct {
	text   string
	nested *Value
}

// Literal returns a terminal Value holding s.
func Literal(s string) Value {
	return Value{text: s}
}

// Nest returns a Value that wraps inner.
func Nest(inner Value) Value {
	return Value{nested: &inner}
}

// ParseValue constructs a Value from raw configuration text.
//
// JSON and YAML text is decoded as a wrapper object and the inner "Value"
// is taken, defaulting to the empty string when the key is absent. Any other
// text is the terminal value verbatim.
func ParseValue(text string) (Value, error) {
	switch Detect(text) {
	case FormatEmpty:
		return Value{}, nil

	case FormatJSON:
		var v Value

		err := v.UnmarshalJSON([]byte(text))

		return v.unwrap(), err

	case FormatYAML:
		var v Value

		err := v.UnmarshalYAML([]byte(text))

		return v.unwrap(), err

	default:
		return Literal(text), nil
	}
}

// MustParseValue is like [ParseValue] but panics on error.
func MustParseValue(text string) Value {
	v, err := ParseValue(text)
	if err != nil {
		panic(err)
	}

	return v
}

// unwrap strips the single wrapper level produced by decoding a wrapper
// object at the top level of [ParseValue].
func (v Value) unwrap() Value {
	if v.nested != nil {
		return *v.nested
	}

	return v
}

// IsNested reports whether v wraps another Value.
func (v Value) IsNested() bool { return v.nested != nil }

// Inner returns the wrapped Value and true, or the zero Value and false if v
// is terminal.
func (v Value) Inner() (Value, bool) {
	if v.nested == nil {
		return Value{}, false
	}

	return *v.nested, true
}

// Resolve returns the terminal string reached by following nested wrappers.
//
// It fails with [ErrMaxDepthExceeded] when more than [MaxValueDepth]
// wrappers are chained or when a wrapper refers back to itself.
func (v Value) Resolve() (string, error) {
	seen := make(map[*Value]struct{})
	cur := &v

	for depth := 0; cur.nested != nil; depth++ {
		if depth >= MaxValueDepth {
			return "", ErrMaxDepthExceeded.
				With(slog.Int("max_depth", MaxValueDepth))
		}

		if _, ok := seen[cur.nested]; ok {
			return "", ErrMaxDepthExceeded.
				With(slog.Int("depth", depth), slog.Bool("cycle", true))
		}

		seen[cur.nested] = struct{}{}
		cur = cur.nested
	}

	return cur.text, nil
}

// Equal reports whether v and w resolve to the same string with the same
// nesting structure.
func (v Value) Equal(w Value) bool {
	for depth := 0; depth <= MaxValueDepth; depth++ {
		if (v.nested == nil) != (w.nested == nil) {
			return false
		}

		if v.nested == nil {
			return v.text == w.text
		}

		v, w = *v.nested, *w.nested
	}

	return false
}

// UnmarshalJSON decodes either a JSON scalar (the terminal value) or a
// wrapper object with a "Value" key (a nested value).
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return ErrInvalidFormat.Wrap(err).
			With(slog.String("format", FormatJSON.String()))
	}

	out, err := valueFromNative(raw, 0)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// UnmarshalYAML decodes either a YAML scalar (the terminal value) or a
// wrapper mapping with a "Value" key (a nested value).
func (v *Value) UnmarshalYAML(data []byte) error {
	var raw any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ErrInvalidFormat.Wrap(err).
			With(slog.String("format", FormatYAML.String()))
	}

	out, err := valueFromNative(raw, 0)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// valueFromNative converts a decoded JSON or YAML document to a Value.
func valueFromNative(raw any, depth int) (Value, error) {
	if depth > MaxValueDepth {
		return Value{}, ErrMaxDepthExceeded.
			With(slog.Int("max_depth", MaxValueDepth))
	}

	switch x := raw.(type) {
	case nil:
		return Value{}, nil

	case string:
		return Literal(x), nil

	case bool:
		return Literal(strconv.FormatBool(x)), nil

	case json.Number:
		return Literal(x.String()), nil

	case map[string]any:
		inner, err := valueFromNative(x[valueKey], depth+1)
		if err != nil {
			return Value{}, err
		}

		return Nest(inner), nil

	case []any:
		return Value{}, ErrInvalidFormat.
			With(slog.String("reason", "value cannot be a sequence"))

	default:
		// YAML integers and floats, plus anything else with a sane
		// string form.
		return Literal(fmt.Sprint(x)), nil
	}
}

// MarshalJSON is intentionally unsupported for a bare Value; serialize the
// enclosing [Pattern] instead.
func (v Value) MarshalJSON() ([]byte, error) {
	return nil, ErrUnsupportedOperation.
		With(slog.String("operation", "Value.MarshalJSON"))
}

// MarshalYAML is intentionally unsupported for a bare Value; serialize the
// enclosing [Pattern] instead.
func (v Value) MarshalYAML() ([]byte, error) {
	return nil, ErrUnsupportedOperation.
		With(slog.String("operation", "Value.MarshalYAML"))
}

// SerializeJSON is not implemented for a bare Value.
func (v Value) SerializeJSON() (string, error) {
	return "", ErrUnsupportedOperation.
		With(slog.String("operation", "Value.SerializeJSON"))
}

// SerializeYAML is not implemented for a bare Value.
func (v Value) SerializeYAML() (string, error) {
	return "", ErrUnsupportedOperation.
		With(slog.String("operation", "Value.SerializeYAML"))
}

// ToRegex is not implemented for a bare Value. A value has no regex meaning
// until a [Pattern] kind interprets it.
func (v Value) ToRegex() (string, error) {
	return "", ErrUnsupportedOperation.
		With(slog.String("operation", "Value.ToRegex"))
}
