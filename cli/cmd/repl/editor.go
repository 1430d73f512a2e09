package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/rules"
)

const defaultEditor = "vi"

// editRuleCommand implements [tea.ExecCommand] for the edit-parse-retry
// loop. It writes the rule document to a temp file, opens the user's editor,
// and re-parses the result. On error the user is asked to re-edit.
type editRuleCommand struct {
	content string
	ctxFunc func() context.Context
	parse   func(context.Context, string) (*rules.Rule, error)
	rule    *rules.Rule
	logger  log.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editRuleCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editRuleCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editRuleCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file leaves c.rule nil. If the user
// declines to re-edit, Run returns [ErrEditDeclined].
func (c *editRuleCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp("", "regexrules-repl-*.yml")
	if err != nil {
		return err
	}

	path := f.Name()

	defer os.Remove(path)

	if err := f.Close(); err != nil {
		return err
	}

	content := c.content
	scanner := bufio.NewScanner(c.stdin)

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content = string(data)
		if strings.TrimSpace(content) == "" {
			return nil
		}

		rule, parseErr := c.parse(ctx, content)

		c.logger.TraceContext(ctx, "editor parse attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", parseErr == nil),
		)

		if parseErr == nil {
			c.rule = rule

			return nil
		}

		fmt.Fprintf(c.stderr, "\nParse error: %s\n", parseErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor opens path in $EDITOR and waits for it to exit.
func runEditor(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	args := strings.Fields(editor)

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
