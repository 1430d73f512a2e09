package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/pattern"
)

// Classes lists the symbolic names accepted for CharacterClass and Anchor
// values.
type Classes struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"o"`
	Only   string `default:"" enum:",class,anchor" help:"List only character classes or only anchors."`
}

type tableListing struct {
	Kind    string          `json:"Kind"    yaml:"Kind"`
	Entries []pattern.Entry `json:"Entries" yaml:"Entries"`
}

// Run executes the classes command.
func (c *Classes) Run(ctx context.Context) error {
	var listings []tableListing

	if c.Only != "anchor" {
		listings = append(listings, listing(pattern.KindCharacterClass, pattern.CharacterClasses))
	}

	if c.Only != "class" {
		listings = append(listings, listing(pattern.KindAnchor, pattern.Anchors))
	}

	if err := writeListings(outputFrom(ctx), c.Format, listings); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func listing(kind pattern.Kind, t *pattern.Table) tableListing {
	return tableListing{Kind: kind.String(), Entries: slices.Collect(t.All())}
}

func writeListings(w io.Writer, format string, listings []tableListing) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(listings)

	case "yaml":
		b, err := yaml.MarshalWithOptions(listings, yaml.IndentSequence(true))
		if err != nil {
			return err
		}

		_, err = w.Write(b)

		return err

	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

		for i, l := range listings {
			if i > 0 {
				fmt.Fprintln(tw)
			}

			fmt.Fprintf(tw, "%s\tTOKEN\n", l.Kind)

			for _, e := range l.Entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Token)
			}
		}

		return tw.Flush()
	}
}
