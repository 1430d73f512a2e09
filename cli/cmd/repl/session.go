package repl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/pattern"
	"github.com/rbleattler/RegExRules/rules"
	"github.com/rbleattler/RegExRules/shorthand"
	"github.com/rbleattler/RegExRules/verify"
)

// sessionName is the rule name of REPL input.
const sessionName = "repl"

// session holds the state that survives between submitted lines: the most
// recently compiled rule and the engine results are verified with.
type session struct {
	logger log.Logger
	engine verify.Engine
	rule   *rules.Rule
}

// parse decodes one line of input. JSON and YAML documents are read as rule
// documents; anything else is shorthand.
func (s *session) parse(ctx context.Context, input string) (*rules.Rule, error) {
	opts := []rules.Option{rules.WithName(sessionName), rules.WithLogger(s.logger)}

	switch pattern.Detect(input) {
	case pattern.FormatJSON, pattern.FormatYAML:
		return rules.ParseString(ctx, input, opts...)

	default:
		nodes, err := shorthand.Parse(input)
		if err != nil {
			return nil, err
		}

		return rules.New(nodes, opts...), nil
	}
}

// eval compiles input and, when an engine is set, verifies the result.
// The session's rule is replaced only on success.
func (s *session) eval(ctx context.Context, input string) (string, error) {
	rule, err := s.parse(ctx, input)
	if err != nil {
		return "", err
	}

	if err := s.replace(rule); err != nil {
		return "", err
	}

	return s.compiled()
}

// replace validates that rule compiles before adopting it.
func (s *session) replace(rule *rules.Rule) error {
	expr, err := rule.Compile()
	if err != nil {
		return err
	}

	if s.engine != "" {
		if err := verify.Check(s.engine, expr); err != nil {
			return err
		}
	}

	s.rule = rule

	return nil
}

func (s *session) compiled() (string, error) {
	if s.rule == nil {
		return "", ErrNoRule
	}

	expr, err := s.rule.Compile()
	if err != nil {
		return "", err
	}

	if s.engine != "" {
		return fmt.Sprintf("%s  (%s ok)", expr, s.engine), nil
	}

	return expr, nil
}

// setEngine selects the verification engine. "off" or an empty name
// disables verification.
func (s *session) setEngine(name string) error {
	if name == "" || strings.EqualFold(name, "off") {
		s.engine = ""

		return nil
	}

	e, err := verify.ParseEngine(name)
	if err != nil {
		return err
	}

	s.engine = e
	s.logger.Debug("repl engine", slog.String("engine", e.String()))

	return nil
}

// document returns the current rule in normalized YAML.
func (s *session) document(ctx context.Context) (string, error) {
	if s.rule == nil {
		return "", ErrNoRule
	}

	var buf bytes.Buffer
	if err := s.rule.Encode(ctx, &buf, pattern.FormatYAML, 2); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// table renders a symbol table as two aligned columns.
func table(t *pattern.Table) string {
	tbl := lgtable.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })

	for e := range t.All() {
		tbl.Row(e.Name, e.Token)
	}

	return tbl.Render()
}
