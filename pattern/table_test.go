package pattern

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestTable_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		input string
		want  string
		ok    bool
	}{
		{name: "class name", table: CharacterClasses, input: "Digit", want: `\d`, ok: true},
		{name: "class lower", table: CharacterClasses, input: "digit", want: `\d`, ok: true},
		{name: "class upper", table: CharacterClasses, input: "DIGIT", want: `\d`, ok: true},
		{name: "class hyphen", table: CharacterClasses, input: "Non-Digit", want: `\D`, ok: true},
		{name: "class underscore", table: CharacterClasses, input: "non_whitespace", want: `\S`, ok: true},
		{name: "class token", table: CharacterClasses, input: `\w`, want: `\w`, ok: true},
		{name: "class bracket token", table: CharacterClasses, input: "[a-z]", want: "[a-z]", ok: true},
		{name: "class unknown token", table: CharacterClasses, input: `\q`, ok: false},
		{name: "class unknown name", table: CharacterClasses, input: "Bogus", ok: false},
		{name: "anchor name", table: Anchors, input: "WordBoundary", want: `\b`, ok: true},
		{name: "anchor spaced", table: Anchors, input: "word boundary", want: `\b`, ok: true},
		{name: "anchor token", table: Anchors, input: "^", want: "^", ok: true},
		{name: "anchor rejects class", table: Anchors, input: "Digit", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.Canonical(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Canonical(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTable_Listings(t *testing.T) {
	names := CharacterClasses.Names()
	if len(names) != CharacterClasses.Len() {
		t.Fatalf("Names() has %d entries, want %d", len(names), CharacterClasses.Len())
	}

	if names[0] != "Any" || names[1] != "Digit" {
		t.Errorf("Names() not in table order: %v", names[:2])
	}

	var count int
	for e := range Anchors.All() {
		if tok, ok := Anchors.Token(e.Name); !ok || tok != e.Token {
			t.Errorf("Token(%q) = %q, want %q", e.Name, tok, e.Token)
		}

		count++
	}

	if count != Anchors.Len() {
		t.Errorf("All() yielded %d entries, want %d", count, Anchors.Len())
	}

	if !slices.Contains(Anchors.Tokens(), `\z`) {
		t.Errorf("Tokens() missing \\z: %v", Anchors.Tokens())
	}
}

func TestTable_Suggest(t *testing.T) {
	if got, ok := CharacterClasses.Suggest("Alphanumrc"); !ok || got != "Alphanumeric" {
		t.Errorf("Suggest(Alphanumrc) = (%q, %v), want Alphanumeric", got, ok)
	}

	if got, ok := CharacterClasses.Suggest("zzz"); ok {
		t.Errorf("Suggest(zzz) = %q, want no suggestion", got)
	}

	if _, ok := CharacterClasses.Suggest(""); ok {
		t.Errorf("Suggest of blank input returned a suggestion")
	}
}

func TestTable_InvalidMessage(t *testing.T) {
	p, err := NewCharacterClass("Bogus", nil)
	if p != nil || !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewCharacterClass(Bogus) = %v, %v; want ErrInvalidArgument", p, err)
	}

	msg := err.Error()

	names := strings.Index(msg, "Valid names are: "+strings.Join(CharacterClasses.Names(), ", "))
	tokens := strings.Index(msg, "Valid literals are: "+strings.Join(CharacterClasses.Tokens(), ", "))

	if names < 0 || tokens < 0 {
		t.Fatalf("error message does not list names and literals:\n%s", msg)
	}

	if names > tokens {
		t.Errorf("names must be listed before literals:\n%s", msg)
	}

	if !strings.Contains(msg, `invalid character class "Bogus"`) {
		t.Errorf("error message does not name the input:\n%s", msg)
	}

	// Two independent failures produce the same listing.
	_, again := NewCharacterClass("Bogus", nil)
	if again.Error() != msg {
		t.Errorf("error message is not deterministic")
	}
}
