package cmd

import (
	"context"
	"log/slog"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/pattern"
	"github.com/rbleattler/RegExRules/rules"
)

// Fmt re-encodes rule documents in normalized form.
type Fmt struct {
	YAML FmtYAML `cmd:"" default:"withargs" help:"Format as YAML (default)."`
	JSON FmtJSON `cmd:""                    help:"Format as JSON."`
}

// FmtYAML formats input as YAML.
type FmtYAML struct {
	Indent int    `default:"2" help:"Indent width; 0 uses the encoder default." short:"i"`
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// Run executes the fmt yaml command.
func (f *FmtYAML) Run(ctx context.Context) error {
	return format(ctx, f.Source, pattern.FormatYAML, f.Indent)
}

// FmtJSON formats input as JSON.
type FmtJSON struct {
	Indent int    `default:"2" help:"Indent width; 0 writes compact JSON." short:"i"`
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// Run executes the fmt json command.
func (f *FmtJSON) Run(ctx context.Context) error {
	return format(ctx, f.Source, pattern.FormatJSON, f.Indent)
}

func format(ctx context.Context, name string, f pattern.Format, indent int) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, []string{name})
	if err != nil {
		return err
	}
	defer closeSources(srcs)

	rule, err := rules.Parse(ctx, srcs[0],
		rules.WithName(name),
		rules.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	if err := rule.Encode(ctx, outputFrom(ctx), f, indent); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", f.String()))
	}

	return nil
}
