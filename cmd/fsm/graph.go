package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the state graph visualization",
		Long:  `Outputs the state graph as Graphviz DOT (default) or as a Mermaid flowchart.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")

			switch format {
			case "dot":
				fmt.Fprint(cmd.OutOrStdout(), m.ToDOT())
			case "mermaid":
				fmt.Fprint(cmd.OutOrStdout(), m.ToMermaid())
			default:
				return fmt.Errorf("unknown format %q (want dot or mermaid)", format)
			}

			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}
