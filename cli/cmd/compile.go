package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/rules"
	"github.com/rbleattler/RegExRules/shorthand"
	"github.com/rbleattler/RegExRules/verify"
)

// Compile prints the regular expression of each rule document.
type Compile struct {
	Sources   []string `arg:"" default:"-" help:"Rule files or '-' for stdin." name:"source" optional:""`
	Where     string   `help:"Compile only top-level nodes matching this expression, e.g. Type == 'Group'." short:"w"`
	Verify    string   `default:"" enum:",regexp,regexp2,re2" help:"Check the result compiles with a regex engine (${enum})." placeholder:"ENGINE"`
	Shorthand bool     `help:"Read sources in shorthand notation instead of JSON or YAML." short:"S"`
	NoCache   bool     `help:"Decode every source even when its content was seen before."`
}

// Run executes the compile command.
func (c *Compile) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, c.Sources)
	if err != nil {
		return err
	}
	defer closeSources(srcs)

	out := outputFrom(ctx)

	for _, src := range srcs {
		expr, err := c.compile(ctx, src)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, expr); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

func (c *Compile) compile(ctx context.Context, src source) (string, error) {
	rule, err := c.load(ctx, src)
	if err != nil {
		return "", err
	}

	if c.Where != "" {
		rule, err = rule.Select(c.Where)
		if err != nil {
			return "", err
		}
	}

	expr, err := rule.Compile()
	if err != nil {
		return "", err
	}

	if c.Verify != "" {
		engine, err := verify.ParseEngine(c.Verify)
		if err != nil {
			return "", err
		}

		if err := verify.Check(engine, expr); err != nil {
			return "", ErrVerify.Wrap(err).With(slog.String("source", src.name))
		}
	}

	log.DebugContext(ctx, "compiled",
		slog.String("source", src.name),
		slog.Int("nodes", rule.Len()),
		slog.String("regex", expr),
	)

	return expr, nil
}

func (c *Compile) load(ctx context.Context, src source) (*rules.Rule, error) {
	opts := []rules.Option{
		rules.WithName(src.name),
		rules.WithLogger(log.Default()),
		rules.WithCache(!c.NoCache),
	}

	if !c.Shorthand {
		return rules.Parse(ctx, src, opts...)
	}

	text, err := io.ReadAll(src)
	if err != nil {
		return nil, rules.ErrReadInput.Wrap(err).With(slog.String("source", src.name))
	}

	nodes, err := shorthand.Parse(string(text))
	if err != nil {
		return nil, rules.ErrDecode.Wrap(err).With(slog.String("source", src.name))
	}

	return rules.New(nodes, opts...), nil
}
