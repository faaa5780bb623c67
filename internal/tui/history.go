package tui

import (
	"os"
	"strings"
)

// maxHistory caps the number of commands kept in the history file.
const maxHistory = 500

// History holds the prompt history for up/down recall. Loading and saving
// are best-effort: a missing or unreadable file just means empty history.
type History struct {
	path    string
	entries []string
	pos     int // cursor for navigation; len(entries) means "past the end"
}

// LoadHistory reads the history file at path.
func LoadHistory(path string) *History {
	h := &History{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		h.pos = 0
		return h
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.pos = len(h.entries)
	return h
}

// Add records a command and resets the navigation cursor. Consecutive
// duplicates are collapsed.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		h.pos = len(h.entries)
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}
	h.pos = len(h.entries)
}

// Prev moves the cursor back and returns the command there. The bool is
// false when already at the oldest entry or the history is empty.
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next moves the cursor forward. Past the newest entry it returns an empty
// string, restoring the blank prompt.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", true
	}
	return h.entries[h.pos], true
}

// Save writes the history back to its file. Errors are ignored by callers;
// history is a convenience, not state.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return os.WriteFile(h.path, []byte(b.String()), 0644)
}
