package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/tusk/internal/tui"
)

type parseResult struct {
	Options     tui.Options
	Plain       bool
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("tusk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dataFile := fs.String("data", "", "Path to the task file (overrides config)")
	plain := fs.Bool("plain", false, "Line-oriented session without the TUI (for piped input)")
	noColor := fs.Bool("no-color", false, "Disable styling in the TUI")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: tusk [flags] [command]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Tusk is a task list for your terminal. With no command it starts")
		fmt.Fprintln(&b, "an interactive session; run 'tusk help' for the one-shot commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("unexpected argument %q after flags\n\n%s", fs.Arg(0), usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	return parseResult{
		Options: tui.Options{
			DataFile: *dataFile,
			NoColor:  *noColor,
		},
		Plain: *plain,
	}, nil
}
