package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/rbleattler/RegExRules/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so errors raised later in parsing already use
// the requested format.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevelDefault}"  enum:"${logLevelEnum}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"${logFormatDefault}" enum:"${logFormatEnum}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                                     help:"Set timestamp format; 'none' omits timestamps." name:"time"`
	Caller     bool      `default:"false"                                       help:"Include caller information."                    negatable:""`
	Pretty     bool      `default:"false"                                       help:"Enable colorized pretty printing."              negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelDefault":  log.DefaultLevel.String(),
		"logLevelEnum":     strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatDefault": log.DefaultFormat.String(),
		"logFormatEnum":    strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logger flag and returns a function that logs
// completion.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() { log.TraceContext(ctx, "logger stopped") }
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position. Boolean flags do not pass
// through encoding.TextUnmarshaler and are only seen here early.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, value, assigned := strings.Cut(arg, "=")

		negated := false
		if s, ok := strings.CutPrefix(name, "--no-log-"); ok {
			name, negated = s, true
		} else if s, ok := strings.CutPrefix(name, "--log-"); ok {
			name = s
		} else {
			continue
		}

		switch name {
		case "level", "format":
			if negated {
				continue
			}

			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			}

			if name == "level" {
				_ = f.Level.UnmarshalText([]byte(value))
			} else {
				_ = f.Format.UnmarshalText([]byte(value))
			}

		case "pretty", "caller":
			enable := true
			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				enable = v
			}

			if negated {
				enable = !enable
			}

			if name == "pretty" {
				f.Pretty = enable
				log.Config(log.WithPretty(enable))
			} else {
				f.Caller = enable
				log.Config(log.WithCaller(enable))
			}
		}
	}
}
