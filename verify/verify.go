// Package verify checks that a generated pattern is accepted by a regex
// engine. Patterns are only compiled, never matched against input.
package verify

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"
	re2 "github.com/wasilibs/go-re2"

	"github.com/rbleattler/RegExRules/pattern"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax        = pattern.NewError("pattern rejected by engine")
	ErrUnknownEngine = pattern.NewError("unknown regex engine")
)

// Engine names a regex engine.
type Engine string

// Supported engines.
const (
	// Regexp is the Go standard library engine (RE2 syntax).
	Regexp Engine = "regexp"
	// Regexp2 is a backtracking engine with .NET syntax, which accepts the
	// full anchor table including \Z and \G.
	Regexp2 Engine = "regexp2"
	// RE2 is the C++ RE2 library compiled to WebAssembly.
	RE2 Engine = "re2"
)

// DefaultEngine is the engine used when none is named.
const DefaultEngine = Regexp

var engines = []Engine{Regexp, Regexp2, RE2}

// Engines returns the supported engine names.
func Engines() []string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}

	return names
}

// ParseEngine returns the engine with the given name, ignoring case.
// An empty name is [DefaultEngine].
func ParseEngine(s string) (Engine, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultEngine, nil
	}

	if e := Engine(s); slices.Contains(engines, e) {
		return e, nil
	}

	return "", ErrUnknownEngine.
		Wrap(fmt.Errorf("valid engines are: %s", strings.Join(Engines(), ", "))).
		With(slog.String("engine", s))
}

// String returns the engine name.
func (e Engine) String() string { return string(e) }

// Check compiles expr with the engine and reports whether it was accepted.
func Check(engine Engine, expr string) error {
	var err error

	switch engine {
	case Regexp:
		_, err = regexp.Compile(expr)

	case Regexp2:
		_, err = regexp2.Compile(expr, regexp2.None)

	case RE2:
		_, err = re2.Compile(expr)

	default:
		return ErrUnknownEngine.With(slog.String("engine", string(engine)))
	}

	if err != nil {
		return ErrSyntax.Wrap(err).With(
			slog.String("engine", string(engine)),
			slog.String("pattern", expr),
		)
	}

	return nil
}
