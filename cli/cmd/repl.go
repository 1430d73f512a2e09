package cmd

import (
	"context"

	"github.com/rbleattler/RegExRules/cli/cmd/repl"
	"github.com/rbleattler/RegExRules/log"
)

// Repl starts the interactive compiler.
type Repl struct {
	Engine    string `default:"" enum:",regexp,regexp2,re2" help:"Verify every result with a regex engine (${enum})." placeholder:"ENGINE" short:"e"`
	NoHistory bool   `help:"Keep input history in memory only."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var dir string

	if !r.NoHistory {
		if ktx := kongContextFrom(ctx); ktx != nil {
			dir = ktx.Model.Vars()[CacheIdentifier]
		}
	}

	return repl.Run(ctx, repl.Options{
		CacheDir: dir,
		Engine:   r.Engine,
		Logger:   log.Default(),
	})
}
