package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/tusk/internal/cli"
	"github.com/pablasso/tusk/internal/tui"
)

// Version is set via ldflags at build time.
var Version = "0.1.0"

func main() {
	// Bare invocation (or flags only) starts an interactive session;
	// a subcommand word routes to the one-shot CLI.
	if len(os.Args) == 1 || strings.HasPrefix(os.Args[1], "-") {
		runInteractive(os.Args[1:])
		return
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInteractive(args []string) {
	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return
	}
	if res.ShowVersion {
		fmt.Printf("tusk %s\n", Version)
		return
	}

	run := tui.Run
	if res.Plain {
		run = tui.RunPlain
	}
	if err := run(res.Options); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
