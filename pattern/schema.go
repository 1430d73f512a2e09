package pattern

// Field describes one key of a node's JSON/YAML shape.
type Field struct {
	Name        string   `json:"Name"                  yaml:"Name"`
	Type        string   `json:"Type"                  yaml:"Type"`
	Required    bool     `json:"Required,omitempty"    yaml:"Required,omitempty"`
	Description string   `json:"Description"           yaml:"Description"`
	Enum        []string `json:"Enum,omitempty"        yaml:"Enum,omitempty"`
	Fields      []Field  `json:"Fields,omitempty"      yaml:"Fields,omitempty"`
}

// Descriptor describes the shape of one node kind. Descriptors are plain
// data meant for schema exporters; their field names and types are stable.
type Descriptor struct {
	Type        string  `json:"Type"        yaml:"Type"`
	Description string  `json:"Description" yaml:"Description"`
	Fields      []Field `json:"Fields"      yaml:"Fields"`
}

var quantifierFields = []Field{
	{Name: "Min", Type: "integer", Description: "Minimum number of repetitions."},
	{Name: "Max", Type: "integer", Description: "Maximum number of repetitions; must not be less than Min."},
	{Name: "Exactly", Type: "integer", Description: "Exact number of repetitions; overrides Min and Max when positive."},
	{Name: "Lazy", Type: "boolean", Description: "Match as few repetitions as possible."},
	{Name: "Greedy", Type: "boolean", Description: "Repeat zero or more times when no bound is given."},
}

func commonFields(kind Kind, value Field) []Field {
	return []Field{
		{Name: keyID, Type: "string", Description: "Unique node identifier; generated when absent."},
		{Name: keyType, Type: "string", Required: true, Description: "Node kind.", Enum: []string{kind.String()}},
		value,
		{Name: keyQuantifiers, Type: "object", Description: "Repetition of the node body.", Fields: quantifierFields},
		{Name: keyProperties, Type: "object", Description: "Opaque metadata passed through unchanged."},
		{Name: keyMessage, Type: "string", Description: "Diagnostic message; not used in compilation."},
	}
}

// Schema returns the descriptor of a node kind.
func Schema(kind Kind) Descriptor {
	switch kind {
	case KindCharacterClass:
		return Descriptor{
			Type:        kind.String(),
			Description: "A character class referenced by name or canonical token.",
			Fields: commonFields(kind, Field{
				Name: keyValue, Type: "string", Required: true,
				Description: "Character class name (any case) or canonical token.",
				Enum:        append(CharacterClasses.Names(), CharacterClasses.Tokens()...),
			}),
		}

	case KindAnchor:
		return Descriptor{
			Type:        kind.String(),
			Description: "A zero-width assertion referenced by name or canonical token.",
			Fields: commonFields(kind, Field{
				Name: keyValue, Type: "string", Required: true,
				Description: "Anchor name (any case) or canonical token.",
				Enum:        append(Anchors.Names(), Anchors.Tokens()...),
			}),
		}

	case KindGroup:
		return Descriptor{
			Type:        kind.String(),
			Description: "A group concatenating child patterns in order.",
			Fields: append(
				commonFields(kind, Field{
					Name: keyValue, Type: "string",
					Description: "Group name; required for Named groups.",
				}),
				Field{
					Name: keyGroupType, Type: "string",
					Description: "Grouping syntax; Named when omitted with a Value, otherwise Capturing.",
					Enum:        GroupKindNames(),
				},
				Field{
					Name: keyPatterns, Type: "array",
					Description: "Child patterns of any kind.",
				},
			),
		}

	default:
		return Descriptor{
			Type:        KindLiteral.String(),
			Description: "Literal text, escaped unless it starts with a backslash.",
			Fields: commonFields(KindLiteral, Field{
				Name: keyValue, Type: "string | object",
				Description: "Text, or an object whose Value key holds the text.",
			}),
		}
	}
}

// Schemas returns the descriptors of every node kind in declaration order.
func Schemas() []Descriptor {
	out := make([]Descriptor, 0, len(kinds))
	for k := range Kinds() {
		out = append(out, Schema(k))
	}

	return out
}
