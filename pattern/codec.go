package pattern

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/goccy/go-yaml"
)

// Node keys recognized in JSON and YAML input.
const (
	keyID          = "Id"
	keyType        = "Type"
	keyValue       = valueKey
	keyQuantifiers = "Quantifiers"
	keyProperties  = "Properties"
	keyMessage     = "Message"
	keyGroupType   = "GroupType"
	keyPatterns    = "Patterns"
)

// Parse decodes a node of any kind from JSON or YAML text, selecting the
// variant from its Type key. Text that is neither JSON nor YAML becomes a
// Literal node whose value is the text itself.
func Parse(text string) (*Pattern, error) {
	return parseText(text, nil)
}

// ParseLiteral decodes a Literal node from raw text.
// A Type key in the text is ignored.
func ParseLiteral(text string) (*Pattern, error) {
	k := KindLiteral

	return parseText(text, &k)
}

// ParseCharacterClass decodes a CharacterClass node from raw text.
// A Type key in the text is ignored.
func ParseCharacterClass(text string) (*Pattern, error) {
	k := KindCharacterClass

	return parseText(text, &k)
}

// ParseAnchor decodes an Anchor node from raw text.
// A Type key in the text is ignored.
func ParseAnchor(text string) (*Pattern, error) {
	k := KindAnchor

	return parseText(text, &k)
}

// ParseGroup decodes a Group node from raw text.
// A Type key in the text is ignored.
func ParseGroup(text string) (*Pattern, error) {
	k := KindGroup

	return parseText(text, &k)
}

func parseText(text string, force *Kind) (*Pattern, error) {
	kind := KindLiteral
	if force != nil {
		kind = *force
	}

	switch format := Detect(text); format {
	case FormatEmpty:
		return New(kind, Value{}, nil)

	case FormatJSON, FormatYAML:
		raw, err := DecodeNative([]byte(text), format)
		if err != nil {
			return nil, err
		}

		m, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidFormat.
				Wrap(fmt.Errorf("expected a mapping, got %T", raw)).
				With(slog.String("format", format.String()))
		}

		return fromMap(m, force, 0)

	default:
		return New(kind, Literal(text), nil)
	}
}

// DecodeNative decodes JSON or YAML text into plain Go values: maps with
// string keys, slices, strings, booleans and numbers.
func DecodeNative(data []byte, format Format) (any, error) {
	var raw any

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		if err := dec.Decode(&raw); err != nil {
			return nil, ErrInvalidFormat.Wrap(err).
				With(slog.String("format", format.String()))
		}

	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, ErrInvalidFormat.Wrap(err).
				With(slog.String("format", format.String()))
		}

	default:
		return nil, ErrInvalidFormat.
			With(slog.String("format", format.String()))
	}

	return raw, nil
}

// FromMap builds a node from a decoded JSON object or YAML mapping, selecting
// the variant from its Type key.
func FromMap(m map[string]any) (*Pattern, error) {
	return fromMap(m, nil, 0)
}

func fromMap(m map[string]any, force *Kind, depth int) (*Pattern, error) {
	if depth > MaxGroupDepth {
		return nil, ErrMaxDepthExceeded.
			With(slog.Int("max_depth", MaxGroupDepth))
	}

	p := &Pattern{}

	id, err := stringField(m, keyID)
	if err != nil {
		return nil, err
	}

	if p.ID = id; p.ID == "" {
		p.ID = NewID()
	}

	if p.Message, err = stringField(m, keyMessage); err != nil {
		return nil, err
	}

	if force != nil {
		p.kind = *force
	} else {
		typ, err := stringField(m, keyType)
		if err != nil {
			return nil, err
		}

		if p.kind, err = ParseKind(typ); err != nil {
			return nil, err
		}
	}

	value, err := valueFromNative(m[keyValue], 0)
	if err != nil {
		return nil, err
	}

	if p.kind == KindGroup {
		if err := p.decodeGroup(m, value, depth); err != nil {
			return nil, err
		}
	} else if err := p.SetValue(value); err != nil {
		return nil, err
	}

	q, err := quantifierFromNative(m[keyQuantifiers])
	if err != nil {
		return nil, err
	}

	if err := p.SetQuantifiers(q); err != nil {
		return nil, err
	}

	if raw, ok := m[keyProperties]; ok && raw != nil {
		props, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidFormat.
				Wrap(fmt.Errorf("%s must be a mapping, got %T", keyProperties, raw))
		}

		p.Properties = props
	}

	return p, nil
}

func (p *Pattern) decodeGroup(m map[string]any, value Value, depth int) error {
	tag, err := stringField(m, keyGroupType)
	if err != nil {
		return err
	}

	g := GroupCapturing

	if tag != "" {
		if g, err = ParseGroupKind(tag); err != nil {
			return err
		}
	} else if name, err := value.Resolve(); err != nil {
		return err
	} else if name != "" {
		g = GroupNamed
	}

	if err := p.setGroup(g, value); err != nil {
		return err
	}

	raw, ok := m[keyPatterns]
	if !ok || raw == nil {
		return nil
	}

	list, ok := raw.([]any)
	if !ok {
		return ErrInvalidFormat.
			Wrap(fmt.Errorf("%s must be a sequence, got %T", keyPatterns, raw))
	}

	for i, item := range list {
		cm, ok := item.(map[string]any)
		if !ok {
			return ErrInvalidFormat.
				Wrap(fmt.Errorf("%s[%d] must be a mapping, got %T", keyPatterns, i, item))
		}

		child, err := fromMap(cm, nil, depth+1)
		if err != nil {
			return WrapError(err).With(slog.Int("child", i))
		}

		p.children = append(p.children, child)
	}

	return nil
}

func stringField(m map[string]any, key string) (string, error) {
	switch x := m[key].(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", ErrInvalidFormat.
			Wrap(fmt.Errorf("%s must be a string, got %T", key, x))
	}
}

func quantifierFromNative(raw any) (*Quantifier, error) {
	if raw == nil {
		return nil, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrInvalidFormat.
			Wrap(fmt.Errorf("%s must be a mapping, got %T", keyQuantifiers, raw))
	}

	var (
		q   Quantifier
		err error
	)

	if q.Min, err = intField(m, "Min"); err != nil {
		return nil, err
	}

	if q.Max, err = intField(m, "Max"); err != nil {
		return nil, err
	}

	if q.Exactly, err = intField(m, "Exactly"); err != nil {
		return nil, err
	}

	if q.Lazy, err = boolField(m, "Lazy"); err != nil {
		return nil, err
	}

	if q.Greedy, err = boolField(m, "Greedy"); err != nil {
		return nil, err
	}

	return &q, nil
}

func intField(m map[string]any, key string) (*int, error) {
	var n int64

	switch x := m[key].(type) {
	case nil:
		return nil, nil

	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil, errNotInt(key, x)
		}

		n = i

	case int:
		n = int64(x)

	case int64:
		n = x

	case uint64:
		if x > math.MaxInt32 {
			return nil, errNotInt(key, x)
		}

		n = int64(x)

	case float64:
		if x != math.Trunc(x) {
			return nil, errNotInt(key, x)
		}

		n = int64(x)

	default:
		return nil, errNotInt(key, x)
	}

	if n > math.MaxInt32 || n < math.MinInt32 {
		return nil, errNotInt(key, n)
	}

	return Int(int(n)), nil
}

func boolField(m map[string]any, key string) (*bool, error) {
	switch x := m[key].(type) {
	case nil:
		return nil, nil
	case bool:
		return Bool(x), nil
	default:
		return nil, ErrInvalidFormat.
			Wrap(fmt.Errorf("%s.%s must be a boolean, got %v", keyQuantifiers, key, x))
	}
}

func errNotInt(key string, x any) error {
	return ErrInvalidFormat.
		Wrap(fmt.Errorf("%s.%s must be an integer, got %v", keyQuantifiers, key, x))
}

// encodedNode is the wire shape of a node. Field order is the output order.
type encodedNode struct {
	ID          string         `json:"Id"                    yaml:"Id"`
	Type        string         `json:"Type"                  yaml:"Type"`
	Value       string         `json:"Value"                 yaml:"Value"`
	Quantifiers *Quantifier    `json:"Quantifiers,omitempty" yaml:"Quantifiers,omitempty"`
	Properties  map[string]any `json:"Properties,omitempty"  yaml:"Properties,omitempty"`
	Message     string         `json:"Message,omitempty"     yaml:"Message,omitempty"`
	GroupType   string         `json:"GroupType,omitempty"   yaml:"GroupType,omitempty"`
	Patterns    []*Pattern     `json:"Patterns,omitempty"    yaml:"Patterns,omitempty"`
}

func (p *Pattern) encode() (encodedNode, error) {
	s, err := p.value.Resolve()
	if err != nil {
		return encodedNode{}, p.wrapErr(err)
	}

	n := encodedNode{
		ID:         p.ID,
		Type:       p.Type(),
		Value:      s,
		Properties: p.Properties,
		Message:    p.Message,
	}

	if !p.quantifiers.IsZero() {
		n.Quantifiers = p.quantifiers
	}

	if p.kind == KindGroup {
		n.GroupType = p.group.String()
		n.Patterns = p.children
	}

	return n, nil
}

// MarshalJSON implements json.Marshaler.
func (p *Pattern) MarshalJSON() ([]byte, error) {
	n, err := p.encode()
	if err != nil {
		return nil, err
	}

	return json.Marshal(n)
}

// UnmarshalJSON implements json.Unmarshaler. The variant is selected from the
// Type key.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	return p.unmarshal(data, FormatJSON)
}

// MarshalYAML implements the go-yaml InterfaceMarshaler.
func (p *Pattern) MarshalYAML() (any, error) {
	return p.encode()
}

// UnmarshalYAML implements the go-yaml BytesUnmarshaler. The variant is
// selected from the Type key.
func (p *Pattern) UnmarshalYAML(data []byte) error {
	return p.unmarshal(data, FormatYAML)
}

func (p *Pattern) unmarshal(data []byte, format Format) error {
	raw, err := DecodeNative(data, format)
	if err != nil {
		return err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return ErrInvalidFormat.
			Wrap(fmt.Errorf("expected a mapping, got %T", raw)).
			With(slog.String("format", format.String()))
	}

	out, err := fromMap(m, nil, 0)
	if err != nil {
		return err
	}

	*p = *out

	return nil
}

// SerializeJSON returns the node encoded as a JSON object.
func (p *Pattern) SerializeJSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", ErrInvalidFormat.Wrap(err)
	}

	return string(b), nil
}

// SerializeYAML returns the node encoded as a YAML mapping.
func (p *Pattern) SerializeYAML() (string, error) {
	b, err := yaml.Marshal(p)
	if err != nil {
		return "", ErrInvalidFormat.Wrap(err)
	}

	return string(b), nil
}
