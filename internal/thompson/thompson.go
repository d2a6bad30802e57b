// Package thompson builds the sample nondeterministic automata used by the
// demo command and the tests.
package thompson

import (
	"github.com/cockroachdb/errors"

	"github.com/enetx/fa"
)

// Edge is one transition of a sample automaton.
type Edge struct {
	From   fa.StateID
	To     fa.StateID
	Symbol fa.Symbol
}

// Build creates an NFA with states 0..states-1, the given start state, the
// accepting states and the edges.
func Build(states int, start fa.StateID, accept []fa.StateID, edges []Edge) (*fa.Automaton, error) {
	final := fa.NewStateSet(accept...)

	nfa := fa.NewNFA()
	for id := fa.StateID(0); id < fa.StateID(states); id++ {
		nfa.AddState(id, id == start, final.Set().Contains(id))
	}

	for _, e := range edges {
		if err := nfa.AddTransition(e.From, e.To, e.Symbol); err != nil {
			return nil, errors.Wrapf(err, "adding %d -> %d", e.From, e.To)
		}
	}

	return nfa, nil
}

// ABBEdges are the transitions of the textbook Thompson construction of (a|b)*abb.
var ABBEdges = []Edge{
	{0, 1, fa.Epsilon},
	{0, 7, fa.Epsilon},
	{1, 2, fa.Epsilon},
	{1, 4, fa.Epsilon},
	{2, 3, fa.Char('a')},
	{4, 5, fa.Char('b')},
	{3, 6, fa.Epsilon},
	{5, 6, fa.Epsilon},
	{6, 1, fa.Epsilon},
	{6, 7, fa.Epsilon},
	{7, 8, fa.Char('a')},
	{8, 9, fa.Char('b')},
	{9, 10, fa.Char('b')},
}

// ABB returns the Thompson NFA for (a|b)*abb: states 0..10, start 0, accept 10.
func ABB() *fa.Automaton {
	nfa, err := Build(11, 0, []fa.StateID{10}, ABBEdges)
	if err != nil {
		panic(err)
	}

	return nfa
}

// APlus returns the two-state DFA for a+: 0 --a--> 1 and 1 --a--> 1.
func APlus() *fa.Automaton {
	dfa := fa.NewDFA().
		AddState(0, true, false).
		AddState(1, false, true)

	if err := dfa.AddTransition(0, 1, fa.Char('a')); err != nil {
		panic(err)
	}

	if err := dfa.AddTransition(1, 1, fa.Char('a')); err != nil {
		panic(err)
	}

	return dfa
}
