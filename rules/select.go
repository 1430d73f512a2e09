package rules

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rbleattler/RegExRules/pattern"
)

// node is the environment a selection expression is evaluated against.
type node struct {
	ID         string         `expr:"Id"`
	Type       string         `expr:"Type"`
	Value      string         `expr:"Value"`
	Message    string         `expr:"Message"`
	Properties map[string]any `expr:"Properties"`
	GroupType  string         `expr:"GroupType"`
	Children   int            `expr:"Children"`
}

func newNode(p *pattern.Pattern) (node, error) {
	v, err := p.Value().Resolve()
	if err != nil {
		return node{}, err
	}

	n := node{
		ID:         p.ID,
		Type:       p.Type(),
		Value:      v,
		Message:    p.Message,
		Properties: p.Properties,
	}

	if p.Kind() == pattern.KindGroup {
		n.GroupType = p.GroupKind().String()
		n.Children = len(p.Children())
	}

	if n.Properties == nil {
		n.Properties = map[string]any{}
	}

	return n, nil
}

// CompileSelector compiles a boolean selection expression.
//
// The expression may refer to Id, Type, Value, Message, Properties,
// GroupType and Children of a top-level node, for example
//
//	Type == "Group" && Properties.owner == "ops"
func CompileSelector(expression string) (*vm.Program, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrSelect.Wrap(fmt.Errorf("empty expression"))
	}

	program, err := expr.Compile(expression, expr.Env(node{}), expr.AsBool())
	if err != nil {
		return nil, ErrSelect.Wrap(err).
			With(slog.String("expression", expression))
	}

	return program, nil
}

// Select returns a new rule holding the top-level nodes for which the
// boolean expression is true. See [CompileSelector] for the variables in
// scope.
func (r *Rule) Select(expression string) (*Rule, error) {
	program, err := CompileSelector(expression)
	if err != nil {
		return nil, err
	}

	out := &Rule{name: r.name, logger: r.logger, opts: r.opts}

	for i, p := range r.patterns {
		env, err := newNode(p)
		if err != nil {
			return nil, ErrSelect.Wrap(err).With(slog.Int("index", i))
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return nil, ErrSelect.Wrap(err).With(
				slog.String("expression", expression),
				slog.Int("index", i),
				slog.String("id", p.ID),
			)
		}

		if keep, _ := result.(bool); keep {
			out.patterns = append(out.patterns, p)
		}
	}

	r.logger.Debug("selected patterns",
		slog.String("source", r.name),
		slog.String("expression", expression),
		slog.Int("selected", len(out.patterns)),
		slog.Int("total", len(r.patterns)),
	)

	return out, nil
}
