package fa

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// StateID identifies a state within one automaton.
	StateID int

	// State is a vertex of an automaton. Two states with the same ID in the
	// same automaton are the same state; Start and Accept are metadata.
	State struct {
		ID     StateID
		Start  bool
		Accept bool
	}

	// Transition is a directed edge labeled with a symbol.
	Transition struct {
		From   StateID
		To     StateID
		Symbol Symbol
	}

	// Kind distinguishes nondeterministic and deterministic automata.
	Kind int

	// SubsetHook is called by ToDFA for every edge of the automaton being built.
	// from and to are the sets of source states behind the DFA states, fresh
	// reports whether to was seen for the first time.
	SubsetHook func(from, to StateSet, sym Symbol, fresh bool)

	// edge is a key of the deterministic transition index.
	edge struct {
		from StateID
		sym  Symbol
	}

	// Automaton is a finite state automaton over runes with epsilon moves.
	// The zero value is not usable; create one with NewNFA or NewDFA.
	Automaton struct {
		kind        Kind
		states      g.Map[StateID, State]
		transitions g.Set[Transition]
		outgoing    g.Map[StateID, g.Slice[Transition]]
		start       g.Option[StateID]
		accepts     StateSet
		alphabet    g.Set[Symbol]
		delta       g.Map[edge, StateID]
		onSubset    g.Slice[SubsetHook]
		hookErrs    g.Slice[error]
	}

	// SyncAutomaton is a thread-safe wrapper around an Automaton.
	// It protects all mutating and reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncAutomaton struct {
		a  *Automaton
		mu sync.RWMutex
	}
)

const (
	// NFA may contain epsilon moves and several edges per (state, symbol).
	NFA Kind = iota
	// DFA rejects epsilon moves and keeps at most one edge per (state, symbol).
	DFA
)

func (k Kind) String() string {
	if k == DFA {
		return "DFA"
	}

	return "NFA"
}

func (s State) String() string {
	out := g.Format("State {}", s.ID)
	if s.Start {
		out += " (START)"
	}

	if s.Accept {
		out += " (ACCEPT)"
	}

	return string(out)
}

// IsEpsilon reports whether the transition is consumed without reading input.
func (t Transition) IsEpsilon() bool { return t.Symbol.IsEpsilon() }

func (t Transition) String() string {
	return string(g.Format("{} --{}--> {}", t.From, t.Symbol.String(), t.To))
}
