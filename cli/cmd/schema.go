package cmd

import (
	"context"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/pattern"
)

// Schema prints the JSON/YAML shape of each node kind.
type Schema struct {
	Format string `default:"yaml" enum:"json,yaml" help:"Output format (${enum})." short:"o"`
	Type   string `arg:"" help:"Node kind to describe; all kinds when omitted." optional:""`
}

// Run executes the schema command.
func (s *Schema) Run(ctx context.Context) error {
	var doc any = pattern.Schemas()

	if s.Type != "" {
		kind, err := pattern.ParseKind(s.Type)
		if err != nil {
			return err
		}

		doc = pattern.Schema(kind)
	}

	var (
		b   []byte
		err error
	)

	if s.Format == "json" {
		b, err = json.MarshalIndent(doc, "", "  ")
		b = append(b, '\n')
	} else {
		b, err = yaml.MarshalWithOptions(doc, yaml.IndentSequence(true))
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if _, err := outputFrom(ctx).Write(b); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
