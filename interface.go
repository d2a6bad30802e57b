package fa

import "github.com/enetx/g"

// Machine is the behavior shared by Automaton and SyncAutomaton.
type Machine interface {
	Kind() Kind
	AddTransition(from, to StateID, sym Symbol) error
	Alphabet() g.Slice[Symbol]
	Closure(StateSet) StateSet
	Move(StateSet, Symbol) StateSet
	Accepts(input string) bool
	Deterministic() bool
	ToDFA() *Automaton
	ToDOT() g.String
}

// Interface compliance checks.
var (
	_ Machine = (*Automaton)(nil)
	_ Machine = (*SyncAutomaton)(nil)
)
