package cli

import (
	"context"
	"io"

	"github.com/alecthomas/kong"

	"github.com/rbleattler/RegExRules/cli/cmd"
	"github.com/rbleattler/RegExRules/pkg"
)

// CLI is the top-level command-line interface of regexrules.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Compile cmd.Compile `cmd:"" default:"withargs" help:"Compile rule documents into regular expressions."`
	Fmt     cmd.Fmt     `cmd:""                    help:"Re-encode a rule document in normalized form."`
	Classes cmd.Classes `cmd:""                    help:"List character class and anchor names."`
	Schema  cmd.Schema  `cmd:""                    help:"Describe the JSON/YAML shape of each node kind."`
	Repl    cmd.Repl    `cmd:""                    help:"Compile nodes interactively."`
	Init    cmd.Init    `cmd:""                    help:"Write a configuration file with the current flag values."`
	Version cmd.Version `cmd:""                    help:"Print the program version."`
}

// Run executes the regexrules CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	return run(ctx, exit, nil, nil, args...)
}

// run is [Run] with injectable command output and input; nil uses the
// process streams.
func run(
	ctx context.Context,
	exit func(code int),
	stdout io.Writer,
	stdin io.Reader,
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	options := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Pprof.group()}),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			Tree:                true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(resolve, configFilePath),
		vars,
	}

	if stdout != nil {
		options = append(options, kong.Writers(stdout, stdout))
	}

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	if stdout != nil {
		ctx = cmd.WithOutput(ctx, stdout)
	}

	if stdin != nil {
		ctx = cmd.WithInput(ctx, stdin)
	}

	defer cli.Log.start(ctx)()

	// no-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
