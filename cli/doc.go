// Package cli contains the command line interface for regexrules.
//
// # Usage
//
//	regexrules [flags] [source ...]        compile rule documents (default)
//	regexrules fmt [yaml|json] [source]    re-encode a rule document
//	regexrules classes                     list symbolic names
//	regexrules schema [type]               describe node shapes
//	regexrules repl                        interactive compiler
//	regexrules init                        write the configuration file
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory, e.g. ~/.config/regexrules/config.yaml. Keys are flag names:
//
//	log-level: debug
//	log-format: json
//	verify: re2
//
// The init command writes this file from the flags given on its command
// line. Command-line flags override configuration values.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time: timestamp layout (RFC3339, DateTime, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized multi-line output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o regexrules .
//
// It adds --pprof-mode and --pprof-dir (default ~/.cache/regexrules/pprof).
package cli
