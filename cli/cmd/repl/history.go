package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// Mode prefixes of history file lines.
const (
	evalPrefix = "E:"
	ctrlPrefix = "C:"
)

// HistoryEntry is one submitted line and the mode it was entered in.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

func (e HistoryEntry) encode() string {
	if e.Mode == modeCtrl {
		return ctrlPrefix + e.Line + "\n"
	}

	return evalPrefix + e.Line + "\n"
}

func decodeEntry(line string) HistoryEntry {
	if s, ok := strings.CutPrefix(line, ctrlPrefix); ok {
		return HistoryEntry{Line: s, Mode: modeCtrl}
	}

	s, _ := strings.CutPrefix(line, evalPrefix)

	return HistoryEntry{Line: s, Mode: modeEval}
}

// History is a deduplicated list of submitted lines persisted to a file.
// An empty path keeps history in memory only.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory returns an empty History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load replaces the entries with the contents of the history file.
// A missing file is not an error.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			h.entries = append(h.entries, decodeEntry(line))
		}
	}

	return scanner.Err()
}

// Add appends line in mode. An earlier identical entry is moved to the end
// rather than repeated.
func (h *History) Add(line string, mode inputMode) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	entry := HistoryEntry{Line: line, Mode: mode}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return nil
	}

	if i := slices.Index(h.entries, entry); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
		h.entries = append(h.entries, entry)

		return h.rewrite()
	}

	h.entries = append(h.entries, entry)

	if h.path == "" {
		return nil
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(entry.encode())

	return err
}

// Entry returns the entry at index i, oldest first.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.entries)
}

// rewrite must be called with h.mu held.
func (h *History) rewrite() error {
	if h.path == "" {
		return nil
	}

	var sb strings.Builder

	for _, e := range h.entries {
		sb.WriteString(e.encode())
	}

	return os.WriteFile(h.path, []byte(sb.String()), 0o600)
}
