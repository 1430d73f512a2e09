package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// FormatTime formats a timestamp. An empty result omits the time attribute.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the layout used when none is configured.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default setting for including caller information.
const DefaultCaller = false

// DefaultPretty is the default setting for colorized output.
const DefaultPretty = false

type config struct {
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// Option configures a [Logger].
type Option func(*config)

func makeConfig(w io.Writer, opts ...Option) config {
	var c config

	WithDefaults(w)(&c)

	return c.apply(opts...)
}

// apply returns a copy of c with opts applied.
func (c config) apply(opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

func (c config) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					s := c.formatTime(t)
					if s == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(s)
				}

			case slog.LevelKey:
				// slog renders the trace level as "DEBUG-4".
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelName(l))
				}
			}

			return a
		},
	}
}

func (c config) handler() slog.Handler {
	opts := c.handlerOptions()

	switch {
	case c.pretty:
		return newPrettyHandler(c.output, c.format, opts)

	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)

	default:
		return slog.DiscardHandler
	}
}

// WithDefaults resets every setting to its default and sets the output.
func WithDefaults(w io.Writer) Option {
	return func(c *config) {
		*c = config{
			formatTime: makeFormatTimeFunc(DefaultTimeLayout),
			level:      DefaultLevel,
			format:     DefaultFormat,
			caller:     DefaultCaller,
			pretty:     DefaultPretty,
		}
		WithOutput(w)(c)
	}
}

// WithOutput sets the destination of log messages.
// A nil writer discards all output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	}
}

// WithLevel sets the minimum level of messages that are written.
func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithTimeLayout sets the layout used to format timestamps.
//
// The layout may name one of the [time] package layouts ("RFC3339",
// "Kitchen", "StampMilli", ...), ignoring case and punctuation. Any other
// value is passed verbatim to [time.Time.Format]. An empty layout, or
// "none", omits timestamps.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return func(c *config) { c.formatTime = format }
}

// WithCaller controls whether the source file and line are included.
func WithCaller(enable bool) Option {
	return func(c *config) { c.caller = enable }
}

// WithPretty controls colorized output intended for terminals.
func WithPretty(enable bool) Option {
	return func(c *config) { c.pretty = enable }
}

var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"datetime":    time.DateTime,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"none":        "",

	"stamp":      time.Stamp,
	"stampmilli": time.StampMilli,
	"ms":         time.StampMilli,
	"stampmicro": time.StampMicro,
	"us":         time.StampMicro,
	"stampnano":  time.StampNano,
	"ns":         time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
