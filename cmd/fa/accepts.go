package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enetx/fa/internal/thompson"
)

func newAcceptsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "accepts INPUT...",
		Short: "Report whether (a|b)*abb accepts each input, on the NFA and on its DFA",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa := thompson.ABB().OnSubset(subsetLogger(e))
			dfa := nfa.ToDFA()

			out := cmd.OutOrStdout()
			for _, input := range args {
				fmt.Fprintf(out, "%q\tnfa=%t\tdfa=%t\n", input, nfa.Accepts(input), dfa.Accepts(input))
			}

			return nil
		},
	}
}
