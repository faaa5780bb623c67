// Package command parses one line of user input into a typed command.
//
// Parsing is pure: no command touches the task list. The engine applies
// parsed commands and validates indices against the live list, so a
// failed parse never leaves the list partially mutated.
package command

import (
	"strconv"
	"strings"

	"github.com/pablasso/tusk/internal/task"
)

// Command words of the grammar. The first whitespace-separated token of a
// line selects the command.
const (
	WordList     = "list"
	WordTodo     = "todo"
	WordDeadline = "deadline"
	WordEvent    = "event"
	WordDone     = "done"
	WordDelete   = "delete"
	WordFind     = "find"
	WordBye      = "bye"
)

// Separator tokens splitting description from date text.
const (
	bySep = "/by"
	atSep = "/at"
)

// Command is a parsed user command. Exactly one of the concrete types
// below is returned by Parse.
type Command interface {
	isCommand()
}

// Add appends a fully built task to the list.
type Add struct {
	Task task.Task
}

// List renders the full task list.
type List struct{}

// Done marks task number Index complete.
type Done struct {
	Index int
}

// Delete removes task number Index.
type Delete struct {
	Index int
}

// Find lists tasks whose description contains Keyword.
type Find struct {
	Keyword string
}

// Bye persists the list and ends the session.
type Bye struct{}

func (Add) isCommand()    {}
func (List) isCommand()   {}
func (Done) isCommand()   {}
func (Delete) isCommand() {}
func (Find) isCommand()   {}
func (Bye) isCommand()    {}

// Parse turns one input line into a command. Errors are user-input errors
// carrying a one-line message; they are never fatal.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	word, rest, _ := strings.Cut(trimmed, " ")

	switch word {
	case WordList:
		return List{}, nil
	case WordTodo:
		return parseTodo(rest)
	case WordDeadline:
		return parseTimed(rest, task.KindDeadline, bySep)
	case WordEvent:
		return parseTimed(rest, task.KindEvent, atSep)
	case WordDone:
		return parseIndexed(word, rest)
	case WordDelete:
		return parseIndexed(word, rest)
	case WordFind:
		return Find{Keyword: strings.TrimSpace(rest)}, nil
	case WordBye:
		return Bye{}, nil
	default:
		return nil, &UnknownCommandError{Word: word}
	}
}

// parseTodo builds a todo from everything after the command word.
func parseTodo(rest string) (Command, error) {
	desc := strings.TrimSpace(rest)
	if desc == "" {
		return nil, &EmptyDescriptionError{Kind: task.KindTodo}
	}
	return Add{Task: task.NewTodo(desc)}, nil
}

// parseTimed builds a deadline or event. The separator token splits the
// description from the date text; both sides must be non-empty.
func parseTimed(rest string, kind task.Kind, sep string) (Command, error) {
	before, after, found := cutToken(rest, sep)
	if !found {
		return nil, &MalformedCommandError{
			Reason: "a " + kind.String() + " needs a " + sep + " followed by a date",
		}
	}
	desc := strings.TrimSpace(before)
	when := strings.TrimSpace(after)
	if desc == "" {
		return nil, &EmptyDescriptionError{Kind: kind}
	}
	if when == "" {
		return nil, &MalformedCommandError{
			Reason: "the date after " + sep + " cannot be empty",
		}
	}
	if strings.Contains(when, task.FieldSep) {
		return nil, &MalformedCommandError{
			Reason: "the date cannot contain " + strconv.Quote(task.FieldSep),
		}
	}
	if kind == task.KindDeadline {
		return Add{Task: task.NewDeadline(desc, when)}, nil
	}
	return Add{Task: task.NewEvent(desc, when)}, nil
}

// parseIndexed extracts the integer argument of done/delete.
func parseIndexed(word, rest string) (Command, error) {
	arg := strings.TrimSpace(rest)
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, &MalformedCommandError{
			Reason: word + " needs a task number, got " + strconv.Quote(arg),
		}
	}
	if word == WordDone {
		return Done{Index: n}, nil
	}
	return Delete{Index: n}, nil
}

// cutToken splits s around sep appearing as a whitespace-separated token,
// so a description containing "/by" as part of a word is not split.
func cutToken(s, sep string) (before, after string, found bool) {
	fields := strings.Fields(s)
	for i, f := range fields {
		if f == sep {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
		}
	}
	return s, "", false
}
