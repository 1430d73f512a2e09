package log

//go:generate go tool stringer --linecomment --type Level,Format --output level_string.go

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels returns an iterator over the names of all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range levels {
			if !yield(l.String()) {
				return
			}
		}
	}
}

// levelName returns the uppercase name of l. Levels between the defined
// ones keep the [slog.Level] offset notation, e.g. "INFO+2".
func levelName(l slog.Level) string {
	if slices.Contains(levels, Level(l)) {
		return strings.ToUpper(Level(l).String())
	}

	return l.String()
}

// ParseLevel parses a level name, ignoring case.
// Names accepted by [slog.Level.UnmarshalText] are valid, as is "trace".
// Unrecognized names yield [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

var formats = []Format{FormatText, FormatJSON}

// Formats returns an iterator over the names of all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range formats {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a format name, ignoring case.
// Unrecognized names yield [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if f.String() == s {
			return f
		}
	}

	return DefaultFormat
}
