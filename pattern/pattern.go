package pattern

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// MaxGroupDepth bounds how deeply Group nodes may nest.
const MaxGroupDepth = 64

// groupName matches the names accepted for named groups.
var groupName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Pattern is one typed node of a pattern tree.
//
// The node kind is fixed at construction. Value, Quantifiers and the group
// fields are validated whenever they are assigned, so a *Pattern obtained
// from a constructor or decoder is always well formed except for bound
// ordering, which [Quantifier.Suffix] checks again at compile time.
type Pattern struct {
	// ID uniquely identifies the node. Constructors generate a random UUID
	// when none is given.
	ID string
	// Properties is opaque metadata carried through encoding unchanged.
	Properties map[string]any
	// Message is an optional diagnostic string; it never affects ToRegex.
	Message string

	kind        Kind
	value       Value
	quantifiers *Quantifier
	group       GroupKind
	children    []*Pattern
}

// New returns a node of the given kind holding value and quantifiers.
func New(kind Kind, value Value, quantifiers *Quantifier) (*Pattern, error) {
	if kind < KindLiteral || kind > KindGroup {
		return nil, ErrInvalidArgument.
			With(slog.Int("kind", int(kind)))
	}

	p := &Pattern{ID: NewID(), kind: kind}

	if kind == KindGroup {
		name, err := value.Resolve()
		if err != nil {
			return nil, err
		}

		if name != "" {
			p.group = GroupNamed
		}
	}

	if err := p.SetValue(value); err != nil {
		return nil, err
	}

	if err := p.SetQuantifiers(quantifiers); err != nil {
		return nil, err
	}

	return p, nil
}

// NewLiteral returns a Literal node. The value text is classified with
// [Detect], so it may itself be a JSON or YAML value wrapper.
func NewLiteral(value string, quantifiers *Quantifier) (*Pattern, error) {
	return newFromText(KindLiteral, value, quantifiers)
}

// NewCharacterClass returns a CharacterClass node for a class name such as
// "Digit" (any case) or a canonical token such as `\d`.
func NewCharacterClass(value string, quantifiers *Quantifier) (*Pattern, error) {
	return newFromText(KindCharacterClass, value, quantifiers)
}

// NewAnchor returns an Anchor node for an anchor name such as
// "WordBoundary" or a canonical token such as `\b`.
func NewAnchor(value string, quantifiers *Quantifier) (*Pattern, error) {
	return newFromText(KindAnchor, value, quantifiers)
}

// NewGroup returns a Group node wrapping children. The name is required
// for [GroupNamed] and must be empty otherwise.
func NewGroup(
	kind GroupKind,
	name string,
	quantifiers *Quantifier,
	children ...*Pattern,
) (*Pattern, error) {
	p := &Pattern{ID: NewID(), kind: KindGroup}

	if err := p.setGroup(kind, Literal(name)); err != nil {
		return nil, err
	}

	if err := p.SetQuantifiers(quantifiers); err != nil {
		return nil, err
	}

	if err := p.Append(children...); err != nil {
		return nil, err
	}

	return p, nil
}

func newFromText(kind Kind, text string, q *Quantifier) (*Pattern, error) {
	v, err := ParseValue(text)
	if err != nil {
		return nil, err
	}

	return New(kind, v, q)
}

// NewID returns a fresh node identifier.
func NewID() string { return uuid.NewString() }

// Kind returns the node variant.
func (p *Pattern) Kind() Kind { return p.kind }

// Type returns the Type tag of the node variant. It always agrees with
// [Pattern.Kind].
func (p *Pattern) Type() string { return p.kind.String() }

// Value returns the node's value. For CharacterClass and Anchor nodes this is
// the canonical token.
func (p *Pattern) Value() Value { return p.value }

// Quantifiers returns the node's quantifier, or nil.
func (p *Pattern) Quantifiers() *Quantifier { return p.quantifiers }

// GroupKind returns the grouping syntax of a Group node.
func (p *Pattern) GroupKind() GroupKind { return p.group }

// Children returns the child nodes of a Group node in declaration order.
func (p *Pattern) Children() []*Pattern { return slices.Clone(p.children) }

// SetValue validates v for the node kind and assigns it.
//
// CharacterClass and Anchor values are normalized to their canonical token.
// A Group value is the group name.
func (p *Pattern) SetValue(v Value) error {
	s, err := v.Resolve()
	if err != nil {
		return err
	}

	switch p.kind {
	case KindLiteral:
		p.value = v

	case KindCharacterClass:
		token, ok := CharacterClasses.Canonical(s)
		if !ok {
			return ErrInvalidArgument.
				Wrap(CharacterClasses.invalid(s)).
				With(slog.String("type", p.Type()), slog.String("value", s))
		}

		p.value = Literal(token)

	case KindAnchor:
		token, ok := Anchors.Canonical(s)
		if !ok {
			return ErrInvalidArgument.
				Wrap(Anchors.invalid(s)).
				With(slog.String("type", p.Type()), slog.String("value", s))
		}

		p.value = Literal(token)

	case KindGroup:
		return p.setGroup(p.group, v)
	}

	return nil
}

// SetQuantifiers validates q and assigns it. A nil q removes the quantifier.
func (p *Pattern) SetQuantifiers(q *Quantifier) error {
	if err := q.Validate(); err != nil {
		return WrapError(err).With(slog.String("type", p.Type()))
	}

	p.quantifiers = q.Clone()

	return nil
}

// SetGroupKind changes the grouping syntax of a Group node. The current
// value must be a valid name for the new kind.
func (p *Pattern) SetGroupKind(g GroupKind) error {
	if p.kind != KindGroup {
		return ErrInvalidArgument.
			Wrap(NewError("group type applies only to Group nodes")).
			With(slog.String("type", p.Type()))
	}

	return p.setGroup(g, p.value)
}

// Append adds children to a Group node.
func (p *Pattern) Append(children ...*Pattern) error {
	if p.kind != KindGroup && len(children) > 0 {
		return ErrInvalidArgument.
			Wrap(NewError("only Group nodes have children")).
			With(slog.String("type", p.Type()))
	}

	for i, c := range children {
		if c == nil {
			return ErrInvalidArgument.
				Wrap(NewError("nil child pattern")).
				With(slog.Int("index", len(p.children)+i))
		}
	}

	p.children = append(p.children, children...)

	return nil
}

func (p *Pattern) setGroup(g GroupKind, v Value) error {
	name, err := v.Resolve()
	if err != nil {
		return err
	}

	switch g {
	case GroupNamed:
		if !groupName.MatchString(name) {
			return ErrInvalidArgument.
				Wrap(fmt.Errorf("invalid group name %q", name)).
				With(slog.String("group_type", g.String()))
		}

	case GroupCapturing, GroupNonCapturing:
		if name != "" {
			return ErrInvalidArgument.
				Wrap(fmt.Errorf("%s group cannot have name %q", g, name)).
				With(slog.String("group_type", g.String()))
		}

	default:
		return ErrInvalidArgument.
			With(slog.Int("group_type", int(g)))
	}

	p.group = g
	p.value = v

	return nil
}

// ToRegex compiles the node and its children into a regex pattern string.
func (p *Pattern) ToRegex() (string, error) {
	return p.compile(0)
}

func (p *Pattern) compile(depth int) (string, error) {
	body, err := p.body(depth)
	if err != nil {
		return "", err
	}

	if p.kind == KindLiteral {
		// A quantifier must apply to the whole literal, not its last atom.
		// An escaped "*", "+" or "?" would read as a quantifier already.
		if wrapped := "(?:" + body + ")"; !singleAtom(body) || escapedQuantifier(body) {
			suffix, err := p.quantifiers.Suffix(wrapped)
			if err != nil {
				return "", p.wrapErr(err)
			}

			if suffix != "" {
				return wrapped + suffix, nil
			}
		}
	}

	suffix, err := p.quantifiers.Suffix(body)
	if err != nil {
		return "", p.wrapErr(err)
	}

	if body == "" && suffix != "" {
		return "", p.wrapErr(ErrConstraint.
			Wrap(NewError("quantifier requires a non-empty pattern")).
			With(slog.String("suffix", suffix)))
	}

	return body + suffix, nil
}

// Body returns the regex text of the node without its quantifier suffix.
func (p *Pattern) Body() (string, error) {
	return p.body(0)
}

func (p *Pattern) body(depth int) (string, error) {
	s, err := p.value.Resolve()
	if err != nil {
		return "", p.wrapErr(err)
	}

	switch p.kind {
	case KindLiteral:
		if strings.HasPrefix(s, escapeMarker) {
			return s, nil
		}

		return regexp.QuoteMeta(s), nil

	case KindCharacterClass, KindAnchor:
		return s, nil

	case KindGroup:
		if depth >= MaxGroupDepth {
			return "", ErrMaxDepthExceeded.
				With(slog.String("id", p.ID), slog.Int("max_depth", MaxGroupDepth))
		}

		var sb strings.Builder

		sb.WriteString(p.group.open(s))

		for _, c := range p.children {
			out, err := c.compile(depth + 1)
			if err != nil {
				return "", err
			}

			sb.WriteString(out)
		}

		sb.WriteByte(')')

		return sb.String(), nil

	default:
		return "", ErrInvalidArgument.
			With(slog.Int("kind", int(p.kind)))
	}
}

func (p *Pattern) wrapErr(err error) error {
	return WrapError(err).
		With(slog.String("id", p.ID), slog.String("type", p.Type()))
}

// Equal reports whether p and q describe the same node: the same ID, kind,
// resolved value, quantifier, message, group kind and children. Properties
// are opaque and not compared.
func (p *Pattern) Equal(q *Pattern) bool {
	if p == nil || q == nil {
		return p == q
	}

	if p.ID != q.ID || p.kind != q.kind || p.Message != q.Message ||
		!p.quantifiers.Equal(q.quantifiers) {
		return false
	}

	pv, perr := p.value.Resolve()
	qv, qerr := q.value.Resolve()

	if perr != nil || qerr != nil || pv != qv {
		return false
	}

	if p.kind != KindGroup {
		return true
	}

	return p.group == q.group &&
		slices.EqualFunc(p.children, q.children, (*Pattern).Equal)
}

// singleAtom reports whether s is one regex atom, so that a quantifier
// appended to it applies to all of s.
func singleAtom(s string) bool {
	switch {
	case len([]rune(s)) <= 1:
		return true

	case strings.HasPrefix(s, escapeMarker):
		rest := s[1:]
		if len([]rune(rest)) == 1 {
			return true
		}

		if (strings.HasPrefix(rest, "p{") || strings.HasPrefix(rest, "P{")) &&
			strings.Index(rest, "}") == len(rest)-1 {
			return true
		}

		return false

	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return strings.Count(s, "]") == 1

	default:
		return false
	}
}

// escapedQuantifier reports whether s is a single escaped quantifier
// metacharacter.
func escapedQuantifier(s string) bool {
	return len(s) == 2 && s[0] == '\\' && strings.IndexByte("*+?", s[1]) >= 0
}
