// Package storage persists the task list to a flat text file, one record
// per line.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pablasso/tusk/internal/task"
)

// Store reads and writes the task list at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

// New creates a store for the given data file path.
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list from disk. A missing file yields an empty list.
// Malformed lines are skipped with a warning: one corrupt record should not
// hold the rest of the list hostage, and the file is rewritten on the next
// save anyway.
func (s *Store) Load() (*task.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.NewList(), nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	list := task.NewList()
	for i, line := range strings.Split(string(data), "\n") {
		// Tolerate CRLF endings from hand-edited files.
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.ParseRecord(line)
		if err != nil {
			s.logger.Warn("skipping malformed task record",
				"file", s.path, "line", i+1, "err", err)
			continue
		}
		list.Add(t)
	}
	return list, nil
}

// Save rewrites the whole file from the list. The write is a plain rewrite,
// not a temp-file swap; a crash mid-write can truncate the file. The record
// format carries no versioning, so nothing worse than the rewrite is lost.
func (s *Store) Save(list *task.List) error {
	var b strings.Builder
	for _, t := range list.Tasks() {
		b.WriteString(t.MarshalRecord())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// LockPath returns the lock file path guarding this store's data file.
func (s *Store) LockPath() string {
	dir := filepath.Dir(s.path)
	name := "." + filepath.Base(s.path) + ".lock"
	return filepath.Join(dir, name)
}
