package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pablasso/tusk/internal/command"
)

// withTempData points the CLI at a fresh task file and isolates config.
func withTempData(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TUSK_DATA_FILE", "")

	originalWd, _ := os.Getwd()
	os.Chdir(t.TempDir())
	t.Cleanup(func() { os.Chdir(originalWd) })

	path := filepath.Join(t.TempDir(), "tasks.txt")
	dataFile = path
	t.Cleanup(func() { dataFile = "" })
	return path
}

func TestOneShotAddPersists(t *testing.T) {
	path := withTempData(t)

	if err := runOneShot(command.WordTodo, []string{"buy", "milk"}, true); err != nil {
		t.Fatalf("todo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if got, want := string(data), "T | 0 | buy milk\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOneShotSequence(t *testing.T) {
	path := withTempData(t)

	steps := []struct {
		word    string
		args    []string
		mutates bool
	}{
		{command.WordTodo, []string{"buy", "milk"}, true},
		{command.WordDeadline, []string{"submit", "report", "/by", "2024-01-01"}, true},
		{command.WordDone, []string{"1"}, true},
		{command.WordDelete, []string{"2"}, true},
		{command.WordList, nil, false},
	}
	for _, step := range steps {
		if err := runOneShot(step.word, step.args, step.mutates); err != nil {
			t.Fatalf("%s: %v", step.word, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if got, want := string(data), "T | 1 | buy milk\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOneShotUserErrorDoesNotFail(t *testing.T) {
	path := withTempData(t)

	// An out-of-range index is a reply for the user, not a process failure.
	if err := runOneShot(command.WordDelete, []string{"7"}, true); err != nil {
		t.Fatalf("delete: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if string(data) != "" {
		t.Errorf("empty list should persist as an empty file, got %q", string(data))
	}
}

func TestOneShotReleasesLock(t *testing.T) {
	path := withTempData(t)

	if err := runOneShot(command.WordTodo, []string{"buy", "milk"}, true); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// A second run would fail if the first left its lock behind.
	if err := runOneShot(command.WordList, nil, false); err != nil {
		t.Fatalf("second run: %v", err)
	}

	lockPath := filepath.Join(filepath.Dir(path), ".tasks.txt.lock")
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lock file should be removed after the run")
	}
}
