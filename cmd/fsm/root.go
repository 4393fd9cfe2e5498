package main

import (
	"io"
	"log/slog"

	fsm "github.com/enetx/histfsm"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag state out of globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fsm",
		Short:         "Inspect and drive finite state machines described in YAML or JSON",
		Long:          `fsm loads a state machine definition (initial state plus per-state transition tables) and lets you validate it, list its states, render it as a graph or replay events against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", "fsm.yaml", "Path to the state machine definition")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log every state change to stderr")

	root.AddCommand(
		newValidateCmd(),
		newStatesCmd(),
		newGraphCmd(),
		newRunCmd(),
	)

	return root
}

// loadMachine reads the definition named by --config and builds a machine from it.
func loadMachine(cmd *cobra.Command) (*fsm.FSM, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := fsm.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}

	return fsm.New(cfg, fsm.WithLogger(newLogger(cmd)))
}

// newLogger writes to stderr so that command output on stdout stays machine readable.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
