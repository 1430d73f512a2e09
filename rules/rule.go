package rules

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/pattern"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput = pattern.NewError("failed to read input")
	ErrDecode    = pattern.NewError("failed to decode rule")
	ErrSelect    = pattern.NewError("invalid selection expression")
	ErrCompile   = pattern.NewError("failed to compile rule")
)

// Rule is an ordered list of top-level pattern nodes read from one source.
// Its compiled form is the concatenation of each node's regex.
//
// Nodes may be shared with the parse cache and must not be modified.
type Rule struct {
	name     string
	patterns []*pattern.Pattern
	logger   log.Logger
	opts     options
}

type options struct {
	cache bool
}

// Option configures a [Rule] at parse time.
type Option func(*Rule)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(r *Rule) {
		r.logger = logger
	}
}

// WithCache controls whether decoded sources are cached by content hash.
// Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(r *Rule) {
		r.opts.cache = enable
	}
}

// WithName sets the source name reported in log messages and errors.
func WithName(name string) Option {
	return func(r *Rule) {
		r.name = name
	}
}

func applyDefaults(r *Rule) {
	r.opts.cache = true
	r.name = "-"
}

func applyOptions(r *Rule, opts ...Option) {
	for _, opt := range opts {
		opt(r)
	}
}

// New returns a rule holding the given nodes in order.
func New(patterns []*pattern.Pattern, opts ...Option) *Rule {
	r := &Rule{}

	applyDefaults(r)
	applyOptions(r, opts...)

	r.patterns = slices.Clone(patterns)

	return r
}

// Name returns the source name of the rule.
func (r *Rule) Name() string { return r.name }

// Len returns the number of top-level nodes.
func (r *Rule) Len() int { return len(r.patterns) }

// Patterns returns an iterator over the top-level nodes and their indices.
func (r *Rule) Patterns() iter.Seq2[int, *pattern.Pattern] {
	return slices.All(r.patterns)
}

// Compile returns the concatenated regex of every top-level node.
func (r *Rule) Compile() (string, error) {
	var sb strings.Builder

	for i, p := range r.patterns {
		s, err := p.ToRegex()
		if err != nil {
			return "", ErrCompile.Wrap(err).With(
				slog.String("source", r.name),
				slog.Int("index", i),
				slog.String("id", p.ID),
			)
		}

		sb.WriteString(s)
	}

	r.logger.Trace("compiled rule",
		slog.String("source", r.name),
		slog.Int("patterns", len(r.patterns)),
		slog.Int("length", sb.Len()),
	)

	return sb.String(), nil
}
