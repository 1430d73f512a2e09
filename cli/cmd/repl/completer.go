package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/rbleattler/RegExRules/pattern"
	"github.com/rbleattler/RegExRules/verify"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "classes", "anchors", "show", "edit", "engine", "clear", "quit"}

// keywords start a node in shorthand notation.
var keywords = []string{"cc", "class", "anchor", "at", "group", "nc", "named"}

// keywordHints describe the syntax following a keyword.
var keywordHints = map[string]string{
	"cc":     "cc NAME|TOKEN [quantifier]",
	"class":  "class NAME|TOKEN [quantifier]",
	"anchor": "anchor NAME|TOKEN",
	"at":     "at NAME|TOKEN",
	"group":  "group ( nodes... ) [quantifier]",
	"nc":     "nc ( nodes... ) [quantifier]",
	"named":  "named NAME ( nodes... ) [quantifier]",
}

// isWordBoundary reports whether r delimits completion words. Hyphens are
// not boundaries since table names such as non-digit contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', '{', '}', ',', '*', '+', '?', '"', '`':
		return true
	}

	return false
}

// wordBounds returns the word at cursor and its byte boundaries. The word is
// empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// previousWord returns the whitespace-separated word that ends before
// wordStart, or "" at the start of input or after punctuation.
func previousWord(input string, wordStart int) string {
	prefix := strings.TrimRight(input[:wordStart], " \t")
	if prefix == "" || isWordBoundary(lastRune(prefix)) {
		return ""
	}

	word, _, _ := wordBounds(prefix, len(prefix))

	return word
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)

	return r
}

// candidates returns the completion candidates for the word following prev.
// The bool reports whether an empty word should list every candidate.
func candidates(mode inputMode, prev string) ([]string, bool) {
	if mode == modeCtrl {
		if prev == "engine" {
			return append(verify.Engines(), "off"), true
		}

		if prev == "" {
			return ctrlCommands, false
		}

		return nil, false
	}

	switch strings.ToLower(prev) {
	case "cc", "class":
		return pattern.CharacterClasses.Names(), true
	case "anchor", "at":
		return pattern.Anchors.Names(), true
	case "named":
		return nil, false
	}

	return keywords, false
}

// computeMatches finds the fuzzy matches for the word at the cursor.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()

	word, ws, we := wordBounds(input, m.input.Position())
	prev := previousWord(input, ws)

	cands, listAll := candidates(m.mode, prev)
	if len(cands) == 0 {
		return nil, ws, we
	}

	if word == "" {
		if !listAll {
			return nil, ws, we
		}

		matches = make(fuzzy.Matches, len(cands))
		for i, c := range cands {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, ws, we
	}

	return fuzzy.Find(word, cands), ws, we
}

// hint returns the syntax hint for the keyword before the cursor.
func (m model) hint() string {
	if m.mode != modeEval {
		return ""
	}

	input := m.input.Value()
	_, ws, _ := wordBounds(input, m.input.Position())

	if h, ok := keywordHints[strings.ToLower(previousWord(input, ws))]; ok {
		return h
	}

	return ""
}

// renderCandidateBar builds the single-line completion bar, truncated with
// an ellipsis to fit width. The selected candidate is highlighted while
// tab-cycling.
func renderCandidateBar(matches fuzzy.Matches, suggIdx int, tabActive bool, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	reserve := lipgloss.Width(sep) + lipgloss.Width(ellipsis)

	var (
		b    strings.Builder
		used int
	)

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)
		w := lipgloss.Width(rendered)

		if i > 0 {
			w += lipgloss.Width(sep)
		}

		if i > 0 && i < len(matches)-1 && used+w+reserve > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters in bold.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, bold := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		base, bold = selectedStyle, selectedStyle.Bold(true)
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(bold.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
