// Package cmd implements the regexrules subcommands. Each command is a
// kong command struct whose Run method receives the [context.Context]
// prepared by package cli.
package cmd

var (
	// CacheIdentifier is the kong variable holding the cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the configuration file
	// path.
	ConfigIdentifier = "config"
)
