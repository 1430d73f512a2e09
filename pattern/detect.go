package pattern

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"regexp"
	"strings"
)

// Format classifies raw configuration text.
type Format int

const (
	FormatEmpty   Format = iota // empty
	FormatJSON                  // json
	FormatYAML                  // yaml
	FormatLiteral               // literal
)

// escapeMarker prefixes text that is already a canonical regex token.
const escapeMarker = `\`

// yamlKeyLine matches a line holding an unquoted mapping key followed by a
// colon and then whitespace or end of line.
var yamlKeyLine = regexp.MustCompile(`(?m)^[ \t]*(?:- )?[A-Za-z_][A-Za-z0-9_.-]*[ \t]*:(?:[ \t]|$)`)

// Detect classifies text as empty, JSON, YAML, or an opaque literal.
//
// The checks run in a fixed order: blank text is [FormatEmpty]; text
// enclosed in braces is [FormatJSON]; text beginning with a backslash is a
// canonical token and therefore [FormatLiteral]; text with a "key: value"
// line is [FormatYAML]; anything else is a plain [FormatLiteral].
//
// Every constructor that accepts raw text uses Detect, so a given input is
// classified the same way regardless of which node kind receives it.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == "":
		return FormatEmpty

	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		return FormatJSON

	case strings.HasPrefix(trimmed, escapeMarker):
		return FormatLiteral

	case yamlKeyLine.MatchString(text):
		return FormatYAML

	default:
		return FormatLiteral
	}
}
