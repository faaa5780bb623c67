package cli

import (
	"fmt"
	"strings"

	"github.com/pablasso/tusk/internal/command"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo <description>",
	Short: "Add a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordTodo, args, true)
	},
}

var deadlineCmd = &cobra.Command{
	Use:   "deadline <description> /by <date>",
	Short: "Add a deadline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordDeadline, args, true)
	},
}

var eventCmd = &cobra.Command{
	Use:   "event <description> /at <time range>",
	Short: "Add an event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordEvent, args, true)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordList, nil, false)
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <n>",
	Short: "Mark task n as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordDone, args, true)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Remove task n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordDelete, args, true)
	},
}

var findCmd = &cobra.Command{
	Use:   "find <keyword>",
	Short: "Show tasks whose description contains keyword",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOneShot(command.WordFind, args, false)
	},
}

// runOneShot reassembles the grammar line from the subcommand args and
// dispatches it once through the embedded responder. Mutating commands
// save afterwards: unlike the interactive session, a one-shot process has
// no later exit command to persist on.
func runOneShot(word string, args []string, mutates bool) error {
	eng, release, err := openEngine()
	if err != nil {
		return err
	}
	defer release()

	line := word
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}

	reply, err := eng.RespondChecked(line)
	if err != nil {
		return err
	}
	fmt.Println(reply.Text)

	if mutates {
		if err := eng.Save(); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
	}
	return nil
}
