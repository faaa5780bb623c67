package command

import (
	"fmt"

	"github.com/pablasso/tusk/internal/task"
)

// EmptyDescriptionError reports an add command with no description text.
type EmptyDescriptionError struct {
	Kind task.Kind
}

func (e *EmptyDescriptionError) Error() string {
	return fmt.Sprintf("the description of a %s cannot be empty", e.Kind)
}

// MalformedCommandError reports a command whose shape is wrong: a missing
// separator, a blank side, or a non-integer index.
type MalformedCommandError struct {
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return e.Reason
}

// UnknownCommandError reports a first token that is not a command word.
type UnknownCommandError struct {
	Word string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Word)
}
