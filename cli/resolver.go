package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/rbleattler/RegExRules/log"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files,
// such as the one written by the init command:
//
//	log-level: debug
//	log-pretty: true
//	verify: re2
//
// Keys are flag names; underscores may be used in place of hyphens.
// Sequences become comma-separated lists and scalars are passed to kong as
// strings. A file that is not a YAML mapping is ignored with a warning.
// Command-line flags override configuration values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn("ignoring invalid configuration file", slog.Any("error", err))

		return config{}, nil
	}

	out := make(config, len(doc))
	for key, value := range doc {
		out[strings.ReplaceAll(key, "_", "-")] = flagValue(value)
	}

	return out, nil
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. A nil value leaves the flag default.
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}

// flagValue converts a decoded YAML value into a form kong's mappers
// accept. Booleans pass through unchanged.
func flagValue(v any) any {
	switch x := v.(type) {
	case nil, bool, string:
		return x

	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(e)
		}

		return strings.Join(parts, ",")

	default:
		return fmt.Sprint(x)
	}
}
