// Package fa provides finite state automata over runes with epsilon moves:
// construction, epsilon closure, simulation and conversion of a
// nondeterministic automaton into a deterministic one by subset
// construction. It is built with types and utilities from the
// github.com/enetx/g library.
package fa

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// NewNFA creates an empty nondeterministic automaton.
func NewNFA() *Automaton { return newAutomaton(NFA) }

// NewDFA creates an empty deterministic automaton. It rejects epsilon moves
// and a second transition on the same (state, symbol) pair.
func NewDFA() *Automaton { return newAutomaton(DFA) }

func newAutomaton(kind Kind) *Automaton {
	return &Automaton{
		kind:        kind,
		states:      g.NewMap[StateID, State](),
		transitions: g.NewSet[Transition](),
		outgoing:    g.NewMap[StateID, g.Slice[Transition]](),
		start:       g.None[StateID](),
		accepts:     NewStateSet(),
		alphabet:    g.NewSet[Symbol](),
		delta:       g.NewMap[edge, StateID](),
		onSubset:    g.NewSlice[SubsetHook](),
	}
}

// Kind returns whether the automaton is an NFA or a DFA.
func (a *Automaton) Kind() Kind { return a.kind }

// AddState adds a state with the given id. A start state replaces any
// previous start state. Adding an id twice keeps the first State record,
// but the start and accept flags of the later call still apply to that id.
func (a *Automaton) AddState(id StateID, start, accept bool) *Automaton {
	if !a.hasState(id) {
		a.states[id] = State{ID: id, Start: start, Accept: accept}
	}

	if start {
		a.start = g.Some(id)
	}

	if accept {
		a.accepts.Set().Insert(id)
	}

	return a
}

// AddTransition adds an edge from -> to labeled sym. Both states must exist.
// On a DFA, epsilon moves and a second edge on (from, sym) are rejected.
// A failed call leaves the automaton unchanged.
func (a *Automaton) AddTransition(from, to StateID, sym Symbol) error {
	if !a.hasState(from) || !a.hasState(to) {
		return &ErrStatesNotFound{From: from, To: to}
	}

	if a.kind == DFA {
		if sym.IsEpsilon() {
			return &ErrInvalidEpsilonInDFA{From: from, To: to}
		}

		key := edge{from: from, sym: sym}
		if existing, ok := a.delta[key]; ok {
			return &ErrNondeterministicTransition{From: from, Symbol: sym, Existing: existing}
		}

		a.delta[key] = to
	}

	t := Transition{From: from, To: to, Symbol: sym}
	if a.transitions.Contains(t) {
		return nil
	}

	a.transitions.Insert(t)
	a.outgoing[from] = append(a.outgoing[from], t)

	if !sym.IsEpsilon() {
		a.alphabet.Insert(sym)
	}

	return nil
}

func (a *Automaton) hasState(id StateID) bool {
	_, ok := a.states[id]
	return ok
}

// Start returns the start state, if one was added.
func (a *Automaton) Start() g.Option[StateID] { return a.start }

// State returns the state registered under id. Its Start and Accept fields
// record the first AddState call for id; use Start and IsAccept for the
// current flags.
func (a *Automaton) State(id StateID) g.Option[State] {
	if s, ok := a.states[id]; ok {
		return g.Some(s)
	}

	return g.None[State]()
}

// States returns all states ordered by id.
func (a *Automaton) States() g.Slice[State] {
	states := make(g.Slice[State], 0, len(a.states))
	for _, s := range a.states {
		states = append(states, s)
	}

	states.SortBy(func(x, y State) cmp.Ordering { return cmp.Cmp(x.ID, y.ID) })

	return states
}

// Transitions returns all transitions ordered by source, symbol and destination.
func (a *Automaton) Transitions() g.Slice[Transition] {
	ts := make(g.Slice[Transition], 0, len(a.transitions))
	for t := range a.transitions {
		ts = append(ts, t)
	}

	ts.SortBy(compareTransitions)

	return ts
}

// AcceptStates returns a copy of the accepting state ids.
func (a *Automaton) AcceptStates() StateSet { return StateSet(a.accepts.Set().Clone()) }

// IsAccept reports whether id is an accepting state.
func (a *Automaton) IsAccept(id StateID) bool { return a.accepts.Set().Contains(id) }

// Alphabet returns the non-epsilon symbols used by any transition, in rune order.
func (a *Automaton) Alphabet() g.Slice[Symbol] {
	symbols := make(g.Slice[Symbol], 0, len(a.alphabet))
	for sym := range a.alphabet {
		symbols = append(symbols, sym)
	}

	symbols.SortBy(compareSymbols)

	return symbols
}

// Deterministic reports whether the automaton has no epsilon moves and at
// most one transition per (state, symbol). A DFA is deterministic by construction.
func (a *Automaton) Deterministic() bool {
	if a.kind == DFA {
		return true
	}

	seen := g.NewSet[edge](a.transitions.Len())
	for t := range a.transitions {
		if t.IsEpsilon() {
			return false
		}

		key := edge{from: t.From, sym: t.Symbol}
		if seen.Contains(key) {
			return false
		}

		seen.Insert(key)
	}

	return true
}

// OnSubset registers a hook called by ToDFA for every edge it builds.
func (a *Automaton) OnSubset(hook SubsetHook) *Automaton {
	a.onSubset.Push(hook)
	return a
}

func compareTransitions(x, y Transition) cmp.Ordering {
	if c := cmp.Cmp(x.From, y.From); c != cmp.Equal {
		return c
	}

	if c := compareSymbols(x.Symbol, y.Symbol); c != cmp.Equal {
		return c
	}

	return cmp.Cmp(x.To, y.To)
}
