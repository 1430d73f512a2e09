package rules

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/rbleattler/RegExRules/pattern"
)

// Parse reads a rule document from r.
//
// A document is a single node or a sequence of nodes, written as JSON or
// YAML. Text that is neither is a single Literal node.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Rule, error) {
	// Wrap reader with async read-ahead so reading overlaps decoding of
	// large inputs.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a rule document held in a string.
func ParseString(ctx context.Context, source string, opts ...Option) (*Rule, error) {
	rule := &Rule{}

	applyDefaults(rule)
	applyOptions(rule, opts...)

	rule.logger.TraceContext(ctx, "read input",
		slog.String("source", rule.name),
		slog.Int("source_bytes", len(source)),
		slog.Bool("cache", rule.opts.cache),
	)

	var (
		patterns []*pattern.Pattern
		err      error
	)

	if rule.opts.cache {
		patterns, err = decodeCached(ctx, rule, source)
	} else {
		patterns, err = decode(source)
	}

	if err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("source", rule.name))
	}

	rule.patterns = patterns

	rule.logger.DebugContext(ctx, "parsed rule",
		slog.String("source", rule.name),
		slog.Int("patterns", len(patterns)),
	)

	return rule, nil
}

// decode converts a rule document into its top-level nodes.
func decode(source string) ([]*pattern.Pattern, error) {
	format := detect(source)

	switch format {
	case pattern.FormatEmpty:
		return nil, nil

	case pattern.FormatJSON, pattern.FormatYAML:
		raw, err := pattern.DecodeNative([]byte(source), format)
		if err != nil {
			return nil, err
		}

		return fromNative(raw)

	default:
		p, err := pattern.Parse(source)
		if err != nil {
			return nil, err
		}

		return []*pattern.Pattern{p}, nil
	}
}

// detect extends [pattern.Detect] with JSON arrays, which are only
// meaningful for whole documents.
func detect(source string) pattern.Format {
	trimmed := strings.TrimSpace(source)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return pattern.FormatJSON
	}

	return pattern.Detect(source)
}

func fromNative(raw any) ([]*pattern.Pattern, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil

	case map[string]any:
		p, err := pattern.FromMap(x)
		if err != nil {
			return nil, err
		}

		return []*pattern.Pattern{p}, nil

	case []any:
		out := make([]*pattern.Pattern, 0, len(x))

		for i, item := range x {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, pattern.ErrInvalidFormat.
					Wrap(fmt.Errorf("item %d must be a mapping, got %T", i, item))
			}

			p, err := pattern.FromMap(m)
			if err != nil {
				return nil, pattern.WrapError(err).With(slog.Int("index", i))
			}

			out = append(out, p)
		}

		return out, nil

	default:
		return nil, pattern.ErrInvalidFormat.
			Wrap(fmt.Errorf("expected a mapping or sequence, got %T", raw))
	}
}
