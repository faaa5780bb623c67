package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pablasso/tusk/internal/engine"
)

// RunPlain runs a line-oriented session over stdin/stdout, for piped input
// and terminals without TTY support. Same engine, no styling, no history.
func RunPlain(opts Options) error {
	eng, _, release, _, err := setup(opts)
	if err != nil {
		return err
	}
	defer release()

	return plainLoop(eng, os.Stdin, os.Stdout)
}

// plainLoop reads one command per line until the exit command or EOF.
// EOF persists like bye so piped sessions never lose work.
func plainLoop(eng *engine.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, engine.Greeting())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		reply, err := eng.Respond(scanner.Text())
		if err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		fmt.Fprintln(out, reply.Text)
		if reply.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	reply, err := eng.Respond("bye")
	if err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	fmt.Fprintln(out, reply.Text)
	return nil
}
