package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/profile"
)

// Init writes a configuration file holding the current global flag values.
type Init struct {
	Force bool `help:"Overwrite an existing configuration file." short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	values := i.values(ctx)

	data, err := yaml.MarshalWithOptions(values, yaml.IndentSequence(true))
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("flags", len(values)),
	)

	return nil
}

// values returns the application-level flags and their current values in
// declaration order. Help, profiling and empty values are omitted.
func (i *Init) values(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	ignore := []string{"help", profile.Tag}

	var out yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(p string) bool {
			return strings.HasPrefix(flag.Name, p)
		}) {
			continue
		}

		v := ktx.FlagValue(flag)

		switch x := v.(type) {
		case nil:
			continue
		case string:
			if x == "" {
				continue
			}
		case []string:
			if len(x) == 0 {
				continue
			}
		}

		out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
	}

	return out
}
