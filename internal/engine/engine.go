// Package engine dispatches parsed commands against the task list and
// renders the reply text. Both front-ends (the interactive session and the
// one-shot CLI) are thin adapters over Respond.
package engine

import (
	"fmt"
	"strings"

	"github.com/pablasso/tusk/internal/command"
	"github.com/pablasso/tusk/internal/storage"
	"github.com/pablasso/tusk/internal/task"
)

// Reply is the result of dispatching one command line.
type Reply struct {
	Text string
	Exit bool // set only by the exit command, after a successful save
}

// Engine owns the in-memory task list for a session and the store it
// persists to. It is not safe for concurrent use; callers serialize.
type Engine struct {
	list  *task.List
	store *storage.Store
}

// New creates an engine over a loaded list and its store.
func New(list *task.List, store *storage.Store) *Engine {
	return &Engine{list: list, store: store}
}

// List exposes the live task list, for front-end status display.
func (e *Engine) List() *task.List {
	return e.list
}

// Save persists the current list. The one-shot CLI calls this after a
// mutating command, since only the exit command saves implicitly.
func (e *Engine) Save() error {
	return e.store.Save(e.list)
}

// Respond processes one input line. User-input errors (bad grammar, index
// out of range, unknown command) are rendered into Reply.Text and never
// returned as an error; the returned error is reserved for I/O failure
// while saving on exit.
func (e *Engine) Respond(line string) (Reply, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return Reply{Text: err.Error()}, nil
	}
	return e.apply(cmd)
}

// RespondChecked is the embedded single-shot responder. It behaves like
// Respond and additionally verifies post-conditions: the task is present
// after an add and absent after a delete. A violation is an internal
// error, not user-facing behavior.
func (e *Engine) RespondChecked(line string) (Reply, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return Reply{Text: err.Error()}, nil
	}

	before := e.list.Len()
	reply, err := e.apply(cmd)
	if err != nil {
		return reply, err
	}

	switch c := cmd.(type) {
	case command.Add:
		if e.list.Len() != before+1 || !e.list.Contains(c.Task) {
			return reply, fmt.Errorf("internal: task missing after add: %s", c.Task)
		}
	case command.Delete:
		// An out-of-range index is reported in the reply text and leaves
		// the list untouched; only a successful delete must shrink it.
		if e.list.Len() != before && e.list.Len() != before-1 {
			return reply, fmt.Errorf("internal: list size %d after deleting from %d", e.list.Len(), before)
		}
	}
	return reply, nil
}

func (e *Engine) apply(cmd command.Command) (Reply, error) {
	switch c := cmd.(type) {
	case command.List:
		return Reply{Text: renderList(e.list)}, nil

	case command.Add:
		e.list.Add(c.Task)
		return Reply{Text: addedMessage(c.Task, e.list.Len())}, nil

	case command.Done:
		t, err := e.list.MarkDone(c.Index)
		if err != nil {
			return Reply{Text: err.Error()}, nil
		}
		return Reply{Text: "Nice! I've marked this task as done:\n  " + t.String()}, nil

	case command.Delete:
		t, err := e.list.Delete(c.Index)
		if err != nil {
			return Reply{Text: err.Error()}, nil
		}
		return Reply{Text: removedMessage(t, e.list.Len())}, nil

	case command.Find:
		return Reply{Text: renderFound(e.list.Find(c.Keyword))}, nil

	case command.Bye:
		if err := e.store.Save(e.list); err != nil {
			return Reply{}, err
		}
		return Reply{Text: "Bye. Hope to see you again soon!", Exit: true}, nil

	default:
		// Parse returns only the types above.
		return Reply{}, fmt.Errorf("internal: unhandled command %T", cmd)
	}
}

// Greeting is the banner shown when a session starts.
func Greeting() string {
	return "Hello! I'm tusk.\nWhat can I do for you?"
}

func addedMessage(t task.Task, total int) string {
	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %s in the list.",
		t, countPhrase(total))
}

func removedMessage(t task.Task, total int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %s in the list.",
		t, countPhrase(total))
}

func countPhrase(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func renderList(l *task.List) string {
	if l.Len() == 0 {
		return "You have no tasks in your list."
	}
	return "Here are the tasks in your list:\n" + renderNumbered(l)
}

func renderFound(l *task.List) string {
	if l.Len() == 0 {
		return "No matching tasks found."
	}
	return "Here are the matching tasks in your list:\n" + renderNumbered(l)
}

func renderNumbered(l *task.List) string {
	var b strings.Builder
	for i, t := range l.Tasks() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t)
	}
	return b.String()
}
