package rules

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/pattern"
)

// Encode writes the rule in normalized form as JSON or YAML. A rule with one
// node is written as a single object, any other rule as a sequence.
//
// An indent of zero selects compact JSON and the default YAML indentation.
func (r *Rule) Encode(
	ctx context.Context,
	w io.Writer,
	format pattern.Format,
	indent int,
) error {
	var doc any = r.patterns

	switch len(r.patterns) {
	case 0:
		doc = []*pattern.Pattern{}
	case 1:
		doc = r.patterns[0]
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case pattern.FormatJSON:
		if indent > 0 {
			data, err = json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(doc)
		}

		data = append(data, '\n')

	case pattern.FormatYAML:
		var opts []yaml.EncodeOption
		if indent > 0 {
			opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
		}

		data, err = yaml.MarshalWithOptions(doc, opts...)

	default:
		return pattern.ErrInvalidFormat.
			With(slog.String("format", format.String()))
	}

	if err != nil {
		return pattern.ErrInvalidFormat.Wrap(err).
			With(slog.String("format", format.String()))
	}

	r.logger.TraceContext(ctx, "encode rule",
		slog.String("source", r.name),
		slog.String("format", format.String()),
		slog.Int("bytes", len(data)),
	)

	if _, err := w.Write(data); err != nil {
		return pattern.WrapError(err).With(slog.String("source", r.name))
	}

	return nil
}
