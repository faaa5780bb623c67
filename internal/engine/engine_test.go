package engine

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pablasso/tusk/internal/logging"
	"github.com/pablasso/tusk/internal/storage"
	"github.com/pablasso/tusk/internal/task"
)

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	logger := logging.NewWithWriter(io.Discard, logging.Options{Level: log.ErrorLevel})
	store := storage.New(path, logger)
	return New(task.NewList(), store), path
}

// respond dispatches one line and fails the test on I/O errors.
func respond(t *testing.T, e *Engine, line string) Reply {
	t.Helper()
	reply, err := e.Respond(line)
	if err != nil {
		t.Fatalf("Respond(%q): %v", line, err)
	}
	return reply
}

func TestAddAndList(t *testing.T) {
	eng, _ := newTestEngine(t)

	respond(t, eng, "todo buy milk")
	respond(t, eng, "deadline submit report /by 2024-01-01")

	reply := respond(t, eng, "list")
	want := "Here are the tasks in your list:\n" +
		"1. [T][ ] buy milk\n" +
		"2. [D][ ] submit report (by: 2024-01-01)"
	if reply.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", reply.Text, want)
	}
}

func TestAddReply(t *testing.T) {
	eng, _ := newTestEngine(t)

	reply := respond(t, eng, "todo buy milk")
	want := "Got it. I've added this task:\n  [T][ ] buy milk\nNow you have 1 task in the list."
	if reply.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", reply.Text, want)
	}

	reply = respond(t, eng, "todo call mum")
	if !strings.Contains(reply.Text, "Now you have 2 tasks in the list.") {
		t.Errorf("second add should pluralize, got:\n%s", reply.Text)
	}
}

func TestDone(t *testing.T) {
	eng, _ := newTestEngine(t)
	respond(t, eng, "todo buy milk")

	reply := respond(t, eng, "done 1")
	if !strings.Contains(reply.Text, "[T][X] buy milk") {
		t.Errorf("done should show the marked task, got:\n%s", reply.Text)
	}

	t.Run("idempotent", func(t *testing.T) {
		again := respond(t, eng, "done 1")
		if !strings.Contains(again.Text, "[T][X] buy milk") {
			t.Errorf("second done should succeed, got:\n%s", again.Text)
		}
	})

	t.Run("list shows the done marker", func(t *testing.T) {
		list := respond(t, eng, "list")
		if !strings.Contains(list.Text, "1. [T][X] buy milk") {
			t.Errorf("got:\n%s", list.Text)
		}
	})
}

func TestDelete(t *testing.T) {
	eng, _ := newTestEngine(t)
	respond(t, eng, "todo buy milk")
	respond(t, eng, "deadline submit report /by 2024-01-01")

	reply := respond(t, eng, "delete 1")
	if !strings.Contains(reply.Text, "[T][ ] buy milk") {
		t.Errorf("delete should show the removed task, got:\n%s", reply.Text)
	}
	if !strings.Contains(reply.Text, "Now you have 1 task in the list.") {
		t.Errorf("got:\n%s", reply.Text)
	}

	list := respond(t, eng, "list")
	want := "Here are the tasks in your list:\n1. [D][ ] submit report (by: 2024-01-01)"
	if list.Text != want {
		t.Errorf("survivor should renumber from 1, got:\n%s", list.Text)
	}
}

func TestUserInputErrors(t *testing.T) {
	eng, _ := newTestEngine(t)

	t.Run("empty todo leaves list unchanged", func(t *testing.T) {
		reply := respond(t, eng, "todo")
		if reply.Text != "the description of a todo cannot be empty" {
			t.Errorf("got %q", reply.Text)
		}
		if eng.List().Len() != 0 {
			t.Errorf("list grew to %d", eng.List().Len())
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		reply := respond(t, eng, "done 5")
		if !strings.Contains(reply.Text, "task 5 does not exist") {
			t.Errorf("got %q", reply.Text)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		reply := respond(t, eng, "frobnicate")
		if reply.Text != `unknown command "frobnicate"` {
			t.Errorf("got %q", reply.Text)
		}
		if reply.Exit {
			t.Error("unknown command must not exit")
		}
	})
}

func TestFind(t *testing.T) {
	eng, _ := newTestEngine(t)
	respond(t, eng, "todo buy milk")
	respond(t, eng, "todo call mum")

	t.Run("matching", func(t *testing.T) {
		reply := respond(t, eng, "find milk")
		want := "Here are the matching tasks in your list:\n1. [T][ ] buy milk"
		if reply.Text != want {
			t.Errorf("got:\n%s\nwant:\n%s", reply.Text, want)
		}
	})

	t.Run("empty keyword returns all", func(t *testing.T) {
		reply := respond(t, eng, "find")
		if !strings.Contains(reply.Text, "buy milk") || !strings.Contains(reply.Text, "call mum") {
			t.Errorf("got:\n%s", reply.Text)
		}
	})

	t.Run("no match is not an error", func(t *testing.T) {
		reply := respond(t, eng, "find zzz_no_match")
		if reply.Text != "No matching tasks found." {
			t.Errorf("got %q", reply.Text)
		}
	})
}

func TestByeSavesAndExits(t *testing.T) {
	eng, path := newTestEngine(t)
	respond(t, eng, "todo buy milk")

	reply := respond(t, eng, "bye")
	if !reply.Exit {
		t.Error("bye should set Exit")
	}
	if reply.Text != "Bye. Hope to see you again soon!" {
		t.Errorf("got %q", reply.Text)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if got, want := string(data), "T | 0 | buy milk\n"; got != want {
		t.Errorf("got file %q, want %q", got, want)
	}
}

func TestByeSaveFailureSurfaces(t *testing.T) {
	logger := logging.NewWithWriter(io.Discard, logging.Options{Level: log.ErrorLevel})
	// Point the store at a path whose directory does not exist.
	store := storage.New(filepath.Join(t.TempDir(), "missing", "tasks.txt"), logger)
	eng := New(task.NewList(), store)

	if _, err := eng.Respond("bye"); err == nil {
		t.Fatal("expected save error, got nil")
	}
}

func TestEmptyList(t *testing.T) {
	eng, _ := newTestEngine(t)
	reply := respond(t, eng, "list")
	if reply.Text != "You have no tasks in your list." {
		t.Errorf("got %q", reply.Text)
	}
}

func TestRespondChecked(t *testing.T) {
	eng, _ := newTestEngine(t)

	t.Run("add passes the post-condition", func(t *testing.T) {
		if _, err := eng.RespondChecked("todo buy milk"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete passes the post-condition", func(t *testing.T) {
		if _, err := eng.RespondChecked("delete 1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eng.List().Len() != 0 {
			t.Errorf("list has %d tasks, want 0", eng.List().Len())
		}
	})

	t.Run("out of range delete is a reply, not an error", func(t *testing.T) {
		reply, err := eng.RespondChecked("delete 7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "does not exist") {
			t.Errorf("got %q", reply.Text)
		}
	})
}
