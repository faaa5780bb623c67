// Package task defines the task model and the ordered task list.
package task

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a task.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Marker returns the one-letter kind marker used in display and storage.
func (k Kind) Marker() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Task is a single entry in the task list. When is empty for todos, a due
// date for deadlines, and a free-text time range for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	When        string
}

// NewTodo creates an unfinished todo.
func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

// NewDeadline creates an unfinished deadline due at the given date.
func NewDeadline(description, by string) Task {
	return Task{Kind: KindDeadline, Description: description, When: by}
}

// NewEvent creates an unfinished event at the given time range.
func NewEvent(description, at string) Task {
	return Task{Kind: KindEvent, Description: description, When: at}
}

// MarkDone marks the task complete. Marking an already-done task is a no-op.
func (t *Task) MarkDone() {
	t.Done = true
}

// Matches reports whether the description contains keyword as a
// case-sensitive substring. The empty keyword matches every task.
func (t Task) Matches(keyword string) bool {
	return strings.Contains(t.Description, keyword)
}

// String renders the task for display, e.g. "[D][ ] return book (by: June 6th)".
func (t Task) String() string {
	done := " "
	if t.Done {
		done = "X"
	}
	s := fmt.Sprintf("[%s][%s] %s", t.Kind.Marker(), done, t.Description)
	switch t.Kind {
	case KindDeadline:
		s += fmt.Sprintf(" (by: %s)", t.When)
	case KindEvent:
		s += fmt.Sprintf(" (at: %s)", t.When)
	}
	return s
}
