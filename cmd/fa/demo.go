package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/enetx/fa"
	"github.com/enetx/fa/internal/battery"
	"github.com/enetx/fa/internal/thompson"
)

type demoOptions struct {
	battery string
	json    bool
}

// demoOutput is the --json form of a demo run.
type demoOutput struct {
	Closure3      fa.StateSet      `json:"closure_3"`
	Move4B        fa.StateSet      `json:"move_4_b"`
	Move5A        fa.StateSet      `json:"move_5_a"`
	Deterministic bool             `json:"deterministic"`
	Reports       []battery.Report `json:"reports"`
}

func newDemoCmd(e *env) *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the (a|b)*abb demonstration against the NFA and its DFA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), e, opts)
		},
	}

	cmd.Flags().StringVar(&opts.battery, "battery", "", "YAML file with the cases to check (default: built-in battery)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")

	return cmd
}

func runDemo(out io.Writer, e *env, opts demoOptions) error {
	cases := battery.Default()
	if opts.battery != "" {
		loaded, err := battery.Load(e.fs, opts.battery)
		if err != nil {
			return err
		}

		cases = loaded
		e.log.Infow("loaded battery", "path", opts.battery, "cases", len(cases))
	}

	nfa := thompson.ABB().OnSubset(subsetLogger(e))

	result := demoOutput{
		Closure3:      nfa.ClosureOf(3),
		Move4B:        nfa.Next(4, fa.Char('b')),
		Move5A:        nfa.Next(5, fa.Char('a')),
		Deterministic: nfa.Deterministic(),
	}

	dfa := nfa.ToDFA()
	e.log.Debugw("subset construction done",
		"states", len(dfa.States()), "transitions", len(dfa.Transitions()))

	result.Reports = []battery.Report{
		battery.Run("NFA", nfa, cases),
		battery.Run("DFA", dfa, cases),
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(result); err != nil {
			return errors.Wrap(err, "encoding demo output")
		}
	} else {
		printDemo(out, result, dfa)
	}

	mismatches := 0
	for _, r := range result.Reports {
		mismatches += r.Mismatches()
	}

	if mismatches > 0 {
		return errors.Newf("%d mismatches between expected and actual acceptance", mismatches)
	}

	return nil
}

func printDemo(out io.Writer, r demoOutput, dfa *fa.Automaton) {
	fmt.Fprintln(out, "=== NFA (a|b)*abb ===")
	fmt.Fprintf(out, "closure({3}) = %s\n", r.Closure3)
	fmt.Fprintf(out, "move({4}, b) = %s\n", r.Move4B)
	fmt.Fprintf(out, "move({5}, a) = %s\n", r.Move5A)
	fmt.Fprintf(out, "deterministic: %t\n", r.Deterministic)
	printReport(out, r.Reports[0])

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== DFA from subset construction ===")
	fmt.Fprintf(out, "states: %d, transitions: %d\n", len(dfa.States()), len(dfa.Transitions()))
	fmt.Fprintf(out, "deterministic: %t\n", dfa.Deterministic())
	printReport(out, r.Reports[1])

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== DFA a+ ===")

	aplus := thompson.APlus()
	fmt.Fprintf(out, "deterministic: %t\n", aplus.Deterministic())
	printReport(out, battery.Run("a+", aplus, []battery.Case{
		{Input: "a", Accept: true},
		{Input: "aa", Accept: true},
		{Input: "aaa", Accept: true},
		{Input: "", Accept: false},
		{Input: "b", Accept: false},
	}))

	if err := aplus.AddTransition(0, 1, fa.Char('a')); err != nil {
		fmt.Fprintf(out, "second 0 --a--> 1 rejected: %v\n", err)
	}
}

func printReport(out io.Writer, r battery.Report) {
	for _, res := range r.Results {
		mark := color.GreenString("match")
		if !res.Match() {
			mark = color.RedString("MISMATCH (want %t)", res.Want)
		}

		fmt.Fprintf(out, "accepts(%q) = %t  [%s]\n", res.Input, res.Got, mark)
	}
}

// subsetLogger logs every DFA edge at debug level.
func subsetLogger(e *env) fa.SubsetHook {
	return func(from, to fa.StateSet, sym fa.Symbol, fresh bool) {
		e.log.Debugw("subset edge",
			"from", from.String(), "symbol", sym.String(), "to", to.String(), "new", fresh)
	}
}
