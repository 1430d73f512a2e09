// Package shorthand parses a compact one-line notation for pattern trees.
//
// Each node is written as a keyword and a value followed by an optional
// quantifier:
//
//	cc Digit {4}              CharacterClass
//	anchor ^                  Anchor
//	`a.b`+                    Literal
//	group ( ... )             capturing Group
//	nc ( ... )                non-capturing Group
//	named year ( ... )        named Group
//
// Quantifiers are *, +, ?, {n} and {m,n}; a trailing ? makes them lazy.
// Values are identifiers, quoted strings, or bare tokens such as \d, ^ and
// [a-z]. A # starts a comment running to the end of the line.
package shorthand

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/rbleattler/RegExRules/pattern"
)

// ErrSyntax reports text that does not follow the notation.
var ErrSyntax = pattern.NewError("invalid shorthand")

var (
	buildOnce sync.Once
	built     *participle.Parser[expression]
	buildErr  error
)

func parser() (*participle.Parser[expression], error) {
	buildOnce.Do(func() {
		lex := lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Whitespace", Pattern: `\s+`},
			{Name: "Comment", Pattern: `#[^\n]*`},
			{Name: "String", Pattern: "\"(?:[^\"\\\\]|\\\\.)*\"|`[^`]*`"},
			{Name: "Token", Pattern: `\\p\{\w+\}|\\.|\[(?:\\.|[^\]\\])*\]|[\^$.]`},
			{Name: "Int", Pattern: `\d+`},
			{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
			{Name: "Punct", Pattern: `[(){},*+?]`},
		})

		built, buildErr = participle.Build[expression](
			participle.Lexer(lex),
			participle.Unquote("String"),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})

	return built, buildErr
}

// Parse converts shorthand text into top-level pattern nodes.
func Parse(text string) ([]*pattern.Pattern, error) {
	p, err := parser()
	if err != nil {
		return nil, ErrSyntax.Wrap(err)
	}

	expr, err := p.ParseString("", text)
	if err != nil {
		e := ErrSyntax.Wrap(err)

		var perr participle.Error
		if errors.As(err, &perr) {
			pos := perr.Position()
			e = e.With(slog.Int("line", pos.Line), slog.Int("column", pos.Column))
		}

		return nil, e
	}

	return convert(expr.Nodes)
}

func convert(nodes []*node) ([]*pattern.Pattern, error) {
	out := make([]*pattern.Pattern, 0, len(nodes))

	for _, n := range nodes {
		p, err := n.pattern()
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

func (n *node) pattern() (*pattern.Pattern, error) {
	q := n.Quant.quantifier()

	switch {
	case n.Class != nil:
		return pattern.New(pattern.KindCharacterClass, pattern.Literal(n.Class.Value), q)

	case n.Anchor != nil:
		return pattern.New(pattern.KindAnchor, pattern.Literal(n.Anchor.Value), q)

	case n.Group != nil:
		children, err := convert(n.Group.Nodes)
		if err != nil {
			return nil, err
		}

		kind := pattern.GroupCapturing

		switch {
		case n.Group.Kind == "nc":
			kind = pattern.GroupNonCapturing
		case n.Group.Kind == "named", n.Group.Name != "":
			kind = pattern.GroupNamed
		}

		return pattern.NewGroup(kind, n.Group.Name, q, children...)

	default:
		var s string
		if n.Literal != nil {
			s = *n.Literal
		}

		return pattern.New(pattern.KindLiteral, pattern.Literal(s), q)
	}
}

func (q *quant) quantifier() *pattern.Quantifier {
	if q == nil {
		return nil
	}

	out := &pattern.Quantifier{}

	switch q.Op {
	case "*":
		out.Min = pattern.Int(0)
	case "+":
		out.Min = pattern.Int(1)
	case "?":
		out.Min, out.Max = pattern.Int(0), pattern.Int(1)
	default:
		if q.Max == nil {
			out.Exactly = q.Min
		} else {
			out.Min, out.Max = q.Min, q.Max
		}
	}

	if q.Lazy {
		out.Lazy = pattern.Bool(true)
	}

	return out
}
