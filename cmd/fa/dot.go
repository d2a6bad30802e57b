package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enetx/fa/internal/thompson"
)

func newDotCmd(e *env) *cobra.Command {
	var dfa bool

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the (a|b)*abb automaton in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := thompson.ABB().OnSubset(subsetLogger(e))
			if dfa {
				a = a.ToDFA()
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), string(a.ToDOT()))
			return err
		},
	}

	cmd.Flags().BoolVar(&dfa, "dfa", false, "render the DFA produced by subset construction")

	return cmd
}
