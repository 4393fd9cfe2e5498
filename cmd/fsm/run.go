package main

import (
	"encoding/json"
	"fmt"
	"strings"

	fsm "github.com/enetx/histfsm"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [events...]",
		Short: "Replay a sequence of events against the machine",
		Long: `Starts the machine in its initial state and applies each argument in order.
Plain arguments are events passed to Trigger. The following steps are also understood:

  :undo          go back to the previous state
  :redo          re-enter the state left by the last undo
  :reset         return to the initial state
  :clear         reset both current and previous state
  :goto=STATE    change state directly, ignoring transition tables

The run stops at the first failing step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, step := range args {
				from := m.Current()

				result, err := apply(m, step)
				if err != nil {
					return fmt.Errorf("step %q: %w", step, err)
				}

				fmt.Fprintf(out, "%-12s %s -> %s%s\n", step, from, m.Current(), result)
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := json.Marshal(m)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, string(data))

				return nil
			}

			fmt.Fprintf(out, "current: %s\n", m.Current())

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the final snapshot as JSON instead of the current state")

	return cmd
}

// apply runs one step. The returned note is appended to the step's output line.
func apply(m *fsm.FSM, step string) (string, error) {
	switch {
	case step == ":undo":
		return noop(m.Undo()), nil
	case step == ":redo":
		return noop(m.Redo()), nil
	case step == ":reset":
		m.Reset()
	case step == ":clear":
		m.ClearHistory()
	case strings.HasPrefix(step, ":goto="):
		return "", m.ChangeState(fsm.State(strings.TrimPrefix(step, ":goto=")))
	case strings.HasPrefix(step, ":"):
		return "", fmt.Errorf("unknown step")
	default:
		return "", m.Trigger(fsm.Event(step))
	}

	return "", nil
}

func noop(moved bool) string {
	if moved {
		return ""
	}

	return " (nothing to do)"
}
