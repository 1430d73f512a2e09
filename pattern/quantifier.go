package pattern

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Quantifier controls how many times a pattern's body may repeat and whether
// the repetition is greedy or lazy. A nil *Quantifier means "exactly once".
type Quantifier struct {
	// Min is the minimum number of times the pattern must match.
	Min *int `json:"Min,omitempty" yaml:"Min,omitempty"`
	// Max is the maximum number of times the pattern can match.
	Max *int `json:"Max,omitempty" yaml:"Max,omitempty"`
	// Exactly is the exact number of times the pattern must match. It takes
	// precedence over Min and Max when positive. Zero is treated as unset.
	Exactly *int `json:"Exactly,omitempty" yaml:"Exactly,omitempty"`
	// Lazy makes the quantifier match as few times as possible.
	Lazy *bool `json:"Lazy,omitempty" yaml:"Lazy,omitempty"`
	// Greedy makes an otherwise unbounded body repeat zero or more times.
	Greedy *bool `json:"Greedy,omitempty" yaml:"Greedy,omitempty"`
}

// Int returns a pointer to n, for populating optional Quantifier fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for populating optional Quantifier fields.
func Bool(b bool) *bool { return &b }

// ParseQuantifier decodes a Quantifier from JSON text, falling back to YAML
// for anything that is not a JSON object. Blank text yields nil.
func ParseQuantifier(text string) (*Quantifier, error) {
	var (
		q   Quantifier
		err error
	)

	switch Detect(text) {
	case FormatEmpty:
		return nil, nil

	case FormatJSON:
		err = json.Unmarshal([]byte(text), &q)
		if err != nil {
			return nil, ErrInvalidFormat.Wrap(err).
				With(slog.String("format", FormatJSON.String()))
		}

	default:
		err = yaml.Unmarshal([]byte(text), &q)
		if err != nil {
			return nil, ErrInvalidFormat.Wrap(err).
				With(slog.String("format", FormatYAML.String()))
		}
	}

	return &q, nil
}

// Validate checks the bounds of q without computing a suffix.
//
// A positive Exactly short-circuits the Min/Max comparison, matching the
// precedence used by [Quantifier.Suffix].
func (q *Quantifier) Validate() error {
	if q == nil {
		return nil
	}

	for _, f := range []struct {
		name string
		n    *int
	}{{"Min", q.Min}, {"Max", q.Max}, {"Exactly", q.Exactly}} {
		if f.n != nil && *f.n < 0 {
			return ErrConstraint.
				Wrap(NewError(f.name + " must not be negative")).
				With(slog.Int(strings.ToLower(f.name), *f.n))
		}
	}

	if q.exactly() {
		return nil
	}

	if q.Min != nil && q.Max != nil && *q.Max < *q.Min {
		return q.errBounds()
	}

	return nil
}

// Suffix returns the quantifier suffix to append to body.
//
// The repetition bound is chosen first; the first matching rule wins:
//
//	Exactly > 0            {Exactly}
//	Min == 0, Max unset    *
//	Min == 1, Max unset    +
//	Min == 0, Max == 1     ?
//	Min <= Max             {Min,Max}
//	Min > Max              ErrConstraint
//
// Then, looking at body followed by the bound chosen so far, Greedy appends
// "*" when no bound field is set and the text does not already end in a
// quantifier, and Lazy appends "?" unless the text already ends in "?".
// Lazy is not applied to an exact count since "{n}?" and "{n}" are
// equivalent.
func (q *Quantifier) Suffix(body string) (string, error) {
	if q == nil {
		return "", nil
	}

	var sb strings.Builder

	switch {
	case q.exactly():
		sb.WriteString("{" + strconv.Itoa(*q.Exactly) + "}")

		return sb.String(), nil

	case is(q.Min, 0) && q.Max == nil:
		sb.WriteByte('*')

	case is(q.Min, 1) && q.Max == nil:
		sb.WriteByte('+')

	case is(q.Min, 0) && is(q.Max, 1):
		sb.WriteByte('?')

	case q.Min != nil && q.Max != nil && *q.Max >= *q.Min:
		sb.WriteString(
			"{" + strconv.Itoa(*q.Min) + "," + strconv.Itoa(*q.Max) + "}",
		)

	case q.Min != nil && q.Max != nil:
		return "", q.errBounds()
	}

	if q.canBeGreedy(body + sb.String()) {
		sb.WriteByte('*')
	}

	if q.Lazy != nil && *q.Lazy && !strings.HasSuffix(body+sb.String(), "?") {
		sb.WriteByte('?')
	}

	return sb.String(), nil
}

// IsZero reports whether q has no field set.
func (q *Quantifier) IsZero() bool {
	return q == nil ||
		(q.Min == nil && q.Max == nil && q.Exactly == nil &&
			q.Lazy == nil && q.Greedy == nil)
}

// Equal reports whether q and r set the same fields to the same values.
func (q *Quantifier) Equal(r *Quantifier) bool {
	if q.IsZero() || r.IsZero() {
		return q.IsZero() == r.IsZero()
	}

	return sameInt(q.Min, r.Min) && sameInt(q.Max, r.Max) &&
		sameInt(q.Exactly, r.Exactly) &&
		sameBool(q.Lazy, r.Lazy) && sameBool(q.Greedy, r.Greedy)
}

// Clone returns a deep copy of q.
func (q *Quantifier) Clone() *Quantifier {
	if q == nil {
		return nil
	}

	c := &Quantifier{}

	if q.Min != nil {
		c.Min = Int(*q.Min)
	}

	if q.Max != nil {
		c.Max = Int(*q.Max)
	}

	if q.Exactly != nil {
		c.Exactly = Int(*q.Exactly)
	}

	if q.Lazy != nil {
		c.Lazy = Bool(*q.Lazy)
	}

	if q.Greedy != nil {
		c.Greedy = Bool(*q.Greedy)
	}

	return c
}

// SerializeJSON returns q encoded as a JSON object.
func (q *Quantifier) SerializeJSON() (string, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return "", ErrInvalidFormat.Wrap(err)
	}

	return string(b), nil
}

// SerializeYAML returns q encoded as a YAML mapping.
func (q *Quantifier) SerializeYAML() (string, error) {
	b, err := yaml.Marshal(q)
	if err != nil {
		return "", ErrInvalidFormat.Wrap(err)
	}

	return string(b), nil
}

// exactly reports whether Exactly is set to a positive count.
func (q *Quantifier) exactly() bool {
	return q.Exactly != nil && *q.Exactly > 0
}

// canBeGreedy reports whether the greedy "*" may follow pattern.
func (q *Quantifier) canBeGreedy(pattern string) bool {
	return q.Greedy != nil && *q.Greedy &&
		q.Exactly == nil && q.Min == nil && q.Max == nil &&
		!strings.HasSuffix(pattern, "*") &&
		!strings.HasSuffix(pattern, "+") &&
		!strings.HasSuffix(pattern, "?")
}

func (q *Quantifier) errBounds() error {
	return ErrConstraint.
		Wrap(NewError("Max must be greater than or equal to Min")).
		With(slog.Int("min", *q.Min), slog.Int("max", *q.Max))
}

func is(p *int, n int) bool { return p != nil && *p == n }

func sameInt(a, b *int) bool {
	return (a == nil && b == nil) || (a != nil && b != nil && *a == *b)
}

func sameBool(a, b *bool) bool {
	return (a == nil && b == nil) || (a != nil && b != nil && *a == *b)
}
