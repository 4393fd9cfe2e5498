package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a definition for errors",
		Long:  `Loads the definition and reports transitions whose target state is not declared. Such transitions fail when triggered. With --strict they make validation fail.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			undeclared := m.Config().UndeclaredTargets()

			for _, u := range undeclared {
				fmt.Fprintf(out, "warning: %s --%s--> %s: target state is not declared\n", u.From, u.Event, u.To)
			}

			if strict, _ := cmd.Flags().GetBool("strict"); strict && undeclared.NotEmpty() {
				return fmt.Errorf("%d transition(s) lead to undeclared states", undeclared.Len())
			}

			fmt.Fprintf(out, "ok: %d states, %d events, initial %q\n", m.States().Len(), m.Events().Len(), m.Initial())

			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "Treat undeclared targets as errors")

	return cmd
}
