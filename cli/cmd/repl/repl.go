// Package repl implements the interactive compiler started by
// "regexrules repl". Each line typed in eval mode is compiled and its
// regular expression printed; Esc toggles a command mode.
package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rbleattler/RegExRules/log"
	"github.com/rbleattler/RegExRules/pattern"
	"github.com/rbleattler/RegExRules/rules"
	"github.com/rbleattler/RegExRules/verify"
)

// editRuleMsg is sent when editing produced a new rule.
type editRuleMsg struct{ rule *rules.Rule }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after an error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when editing failed for a reason other than input.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help             Print this help
  classes          List character class names
  anchors          List anchor names
  show             Print the last compiled rule as YAML
  edit             Edit the last compiled rule in $EDITOR
  engine [NAME]    Verify results with NAME (` + strings.Join(verify.Engines(), ", ") + `, off)
  clear            Clear screen
  quit             Exit REPL

Input:
  Shorthand        cc digit{4} "-" cc digit{2}
                   named year ( cc digit{4} ) anchor $
  JSON             {"Type": "CharacterClass", "Value": "Digit"}
  YAML             Type: Anchor

Keys:
  Tab / Shift-Tab  Cycle completion candidates
  Up / Down        Navigate history (switches mode as needed)
  Shift-Up/Down    Navigate history within the current mode
  Ctrl+C on an empty line or Ctrl+D exits
`
}

// inputMode is the interpretation of submitted lines.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	cellStyle       = lipgloss.NewStyle().PaddingLeft(2)
)

func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

func formatCtrlCommand(input string) string {
	return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	session      *session
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Options configures [Run].
type Options struct {
	// CacheDir holds the history file. Empty keeps history in memory.
	CacheDir string
	// Engine verifies every result when set.
	Engine string
	// Logger receives trace output.
	Logger log.Logger
	// Program options, e.g. [tea.WithInput] in tests.
	Program []tea.ProgramOption
}

// Run starts the REPL and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	opts.Logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", opts.CacheDir),
		slog.String("engine", opts.Engine),
	)

	s := &session{logger: opts.Logger}
	if err := s.setEngine(opts.Engine); err != nil {
		return err
	}

	var path string
	if opts.CacheDir != "" {
		path = filepath.Join(opts.CacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		opts.Logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	opts.Logger.TraceContext(ctx, "repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	p := tea.NewProgram(
		newModel(ctx, s, history, opts.Logger),
		append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.Program...)...,
	)
	_, err = p.Run()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, s *session, history *History, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		session:    s,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editRuleMsg:
		if err := m.session.replace(msg.rule); err != nil {
			return m, tea.Println(errorStyle.Render("error: " + err.Error()))
		}

		expr, _ := m.session.compiled()

		return m, tea.Println(resultStyle.Render(expr))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("edit cancelled"))

	case editDeclinedMsg:
		return m, nil

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch input := m.input.Value(); {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))

	case strings.TrimSpace(input) == "":
		hint := "Type a node in shorthand, JSON or YAML, or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	default:
		b.WriteString(hintStyle.Render(m.hint()))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1, false), nil

	case tea.KeyDown:
		return m.historyStep(1, false), nil

	case tea.KeyShiftUp:
		return m.historyStep(-1, true), nil

	case tea.KeyShiftDown:
		return m.historyStep(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes, tea.KeySpace:
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step, completing immediately when only
// one candidate exists.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + n) % n
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word with replacement and moves
// the cursor after it.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)
	m.wordEnd = cursor
}

// refreshMatches recomputes the candidates at the cursor. With autoConfirm,
// a typed word equal to its sole candidate is accepted and the bar cleared.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not save history", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	echo := tea.Println(formatCommand(input))

	expr, err := m.session.eval(m.ctxFunc(), input)

	m.logger.TraceContext(m.ctxFunc(), "repl eval",
		slog.String("input", input),
		slog.Bool("ok", err == nil),
	)

	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(resultStyle.Render(expr)))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echo := tea.Println(formatCtrlCommand(input))
	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(m.ctxFunc(), "repl command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	reply := func(s string, err error) (model, tea.Cmd) {
		if err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
		}

		return m, tea.Sequence(echo, tea.Println(s))
	}

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return reply(helpMessage(), nil)

	case "classes":
		return reply(table(pattern.CharacterClasses), nil)

	case "anchors":
		return reply(table(pattern.Anchors), nil)

	case "s", "show":
		return reply(m.session.document(m.ctxFunc()))

	case "engine":
		if len(args) > 0 {
			if err := m.session.setEngine(args[0]); err != nil {
				return reply("", err)
			}
		}

		engine := m.session.engine.String()
		if engine == "" {
			engine = "off"
		}

		return reply(hintStyle.Render("engine: "+engine), nil)

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		if m.session.rule == nil {
			return reply("", ErrNoRule)
		}

		return m, tea.Sequence(echo, m.edit())

	default:
		return m, tea.Println(errorStyle.Render("Unknown command: " + cmd + " (try 'help')"))
	}
}

func (m model) edit() tea.Cmd {
	doc, err := m.session.document(m.ctxFunc())
	if err != nil {
		return tea.Println(errorStyle.Render("error: " + err.Error()))
	}

	cmd := &editRuleCommand{
		content: doc,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
		parse:   m.session.parse,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.rule == nil:
			return editCancelledMsg{}
		default:
			return editRuleMsg{rule: cmd.rule}
		}
	})
}

// historyStep moves through history by step. Unless sameMode is set, the
// input mode follows the mode of each recalled entry.
func (m model) historyStep(step int, sameMode bool) model {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil || sameMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m
	}

	if step > 0 {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m
}

// switchToMode switches the input mode, keeping each mode's pending text.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m
}
