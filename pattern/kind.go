package pattern

//go:generate go tool stringer --linecomment --type Kind,GroupKind --output kind_string.go

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Kind identifies a pattern node variant.
type Kind int

// The fixed set of node variants.
const (
	KindLiteral        Kind = iota // Literal
	KindCharacterClass             // CharacterClass
	KindAnchor                     // Anchor
	KindGroup                      // Group
)

var kinds = []Kind{KindLiteral, KindCharacterClass, KindAnchor, KindGroup}

// Kinds returns an iterator over all node kinds in declaration order.
func Kinds() iter.Seq[Kind] {
	return slices.Values(kinds)
}

// ParseKind returns the Kind with the given Type tag, compared without
// regard to case. An empty tag is [KindLiteral].
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindLiteral, nil
	}

	for _, k := range kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}

	return KindLiteral, ErrInvalidArgument.
		Wrap(fmt.Errorf("invalid pattern type %q; valid types are: %s",
			s, strings.Join(names(kinds), ", "))).
		With(slog.String("type", s))
}

// GroupKind selects the grouping syntax of a Group node.
type GroupKind int

// Supported group syntaxes.
const (
	GroupCapturing    GroupKind = iota // Capturing
	GroupNonCapturing                  // NonCapturing
	GroupNamed                         // Named
)

var groupKinds = []GroupKind{GroupCapturing, GroupNonCapturing, GroupNamed}

// GroupKindNames returns the GroupType tags in declaration order.
func GroupKindNames() []string {
	return names(groupKinds)
}

// ParseGroupKind returns the GroupKind with the given tag. Case and the
// separators '-', '_' and ' ' are ignored.
func ParseGroupKind(s string) (GroupKind, error) {
	folded := foldName(s)

	for _, g := range groupKinds {
		if folded == foldName(g.String()) {
			return g, nil
		}
	}

	return GroupCapturing, ErrInvalidArgument.
		Wrap(fmt.Errorf("invalid group type %q; valid types are: %s",
			s, strings.Join(GroupKindNames(), ", "))).
		With(slog.String("group_type", s))
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}

	return out
}

// open returns the opening delimiter of the group syntax.
func (g GroupKind) open(name string) string {
	switch g {
	case GroupNonCapturing:
		return "(?:"
	case GroupNamed:
		return "(?<" + name + ">"
	default:
		return "("
	}
}
