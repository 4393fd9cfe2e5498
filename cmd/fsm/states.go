package main

import (
	"fmt"

	fsm "github.com/enetx/histfsm"
	"github.com/spf13/cobra"
)

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "List declared states in declaration order",
		Long:  `Lists every declared state. With --event only the states that declare a transition for that event are listed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			event, _ := cmd.Flags().GetString("event")

			for state := range m.States(fsm.Event(event)).Iter() {
				fmt.Fprintln(cmd.OutOrStdout(), state)
			}

			return nil
		},
	}

	cmd.Flags().StringP("event", "e", "", "Only list states with a transition for this event")

	return cmd
}
