package pattern

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Entry pairs a symbolic name with its canonical regex token.
type Entry struct {
	Name  string `json:"Name"  yaml:"Name"`
	Token string `json:"Token" yaml:"Token"`
}

// Table is a read-only mapping from symbolic names to canonical tokens.
// Lookups by name ignore case and the separators '-', '_' and ' '; lookups
// by token are exact.
type Table struct {
	label   string
	entries []Entry
	byName  map[string]int
	byToken map[string]int
}

// newTable builds a Table once from an ordered entry list.
// Entry order is the order used in listings and error messages.
func newTable(label string, entries ...Entry) *Table {
	t := &Table{
		label:   label,
		entries: entries,
		byName:  make(map[string]int, len(entries)),
		byToken: make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		t.byName[foldName(e.Name)] = i

		if _, dup := t.byToken[e.Token]; !dup {
			t.byToken[e.Token] = i
		}
	}

	return t
}

// CharacterClasses maps class names to character-class tokens.
var CharacterClasses = newTable("character class",
	Entry{"Any", "."},
	Entry{"Digit", `\d`},
	Entry{"NonDigit", `\D`},
	Entry{"Word", `\w`},
	Entry{"NonWord", `\W`},
	Entry{"Whitespace", `\s`},
	Entry{"NonWhitespace", `\S`},
	Entry{"Tab", `\t`},
	Entry{"Newline", `\n`},
	Entry{"CarriageReturn", `\r`},
	Entry{"FormFeed", `\f`},
	Entry{"VerticalTab", `\v`},
	Entry{"Letter", `[a-zA-Z]`},
	Entry{"Lowercase", `[a-z]`},
	Entry{"Uppercase", `[A-Z]`},
	Entry{"Alphanumeric", `[a-zA-Z0-9]`},
	Entry{"HexDigit", `[0-9a-fA-F]`},
	Entry{"Punctuation", `\p{P}`},
	Entry{"UnicodeLetter", `\p{L}`},
	Entry{"UnicodeDigit", `\p{Nd}`},
)

// Anchors maps anchor names to zero-width assertion tokens.
var Anchors = newTable("anchor",
	Entry{"StartOfLine", "^"},
	Entry{"EndOfLine", "$"},
	Entry{"WordBoundary", `\b`},
	Entry{"NonWordBoundary", `\B`},
	Entry{"StartOfString", `\A`},
	Entry{"EndOfString", `\z`},
	Entry{"EndOfStringOrNewline", `\Z`},
	Entry{"ContiguousMatch", `\G`},
)

// Label returns the human-readable name of the table's domain.
func (t *Table) Label() string { return t.label }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// All returns an iterator over the entries in table order.
func (t *Table) All() iter.Seq[Entry] {
	return slices.Values(t.entries)
}

// Names returns the symbolic names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}

	return names
}

// Tokens returns the distinct canonical tokens in table order.
func (t *Table) Tokens() []string {
	tokens := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if !slices.Contains(tokens, e.Token) {
			tokens = append(tokens, e.Token)
		}
	}

	return tokens
}

// Token returns the canonical token for a symbolic name.
func (t *Table) Token(name string) (string, bool) {
	i, ok := t.byName[foldName(name)]
	if !ok {
		return "", false
	}

	return t.entries[i].Token, true
}

// HasToken reports whether token is one of the table's canonical tokens.
func (t *Table) HasToken(token string) bool {
	_, ok := t.byToken[token]

	return ok
}

// Canonical returns the canonical token for s, which is either a canonical
// token itself or a symbolic name.
func (t *Table) Canonical(s string) (string, bool) {
	if t.HasToken(s) {
		return s, true
	}

	return t.Token(s)
}

// Suggest returns the symbolic name that best matches s, if any.
func (t *Table) Suggest(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	matches := fuzzy.Find(s, t.Names())
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// invalid returns the error describing why s is not in the table. The
// message lists every valid name and token in table order.
func (t *Table) invalid(s string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "invalid %s %q", t.label, s)

	if hint, ok := t.Suggest(s); ok {
		fmt.Fprintf(&sb, " (did you mean %q?)", hint)
	}

	sb.WriteString("\nValid names are: ")
	sb.WriteString(strings.Join(t.Names(), ", "))
	sb.WriteString("\nValid literals are: ")
	sb.WriteString(strings.Join(t.Tokens(), ", "))

	return NewError(sb.String())
}

// foldName normalizes a symbolic name for lookup.
func foldName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
