// Package cli implements the one-shot cobra front-end. Each subcommand
// reassembles a grammar line, dispatches it through the shared engine,
// and persists the result.
package cli

import (
	"fmt"

	"github.com/pablasso/tusk/internal/config"
	"github.com/pablasso/tusk/internal/engine"
	"github.com/pablasso/tusk/internal/logging"
	"github.com/pablasso/tusk/internal/storage"
	"github.com/spf13/cobra"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:     "tusk",
	Short:   "A task list for your terminal",
	Long:    `Tusk keeps a list of todos, deadlines, and events in a plain text file. Run it with no arguments for an interactive session, or use the subcommands for one-shot changes.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the task file (overrides config)")

	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openEngine loads config and the task list, acquires the data file lock,
// and returns the engine plus a release func for the lock.
func openEngine() (*engine.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	if err := config.EnsureDataDir(); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	logger := logging.New(logging.DefaultOptions())
	store := storage.New(cfg.DataFile, logger)

	lock := storage.NewLock(store.LockPath())
	if err := lock.Acquire(); err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release task file lock", "err", err)
		}
	}

	list, err := store.Load()
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("loading tasks: %w", err)
	}

	return engine.New(list, store), release, nil
}
