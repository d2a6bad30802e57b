package fa

import "github.com/enetx/g"

// Run is an incremental simulation of an automaton. It tracks the
// epsilon-closed set of active states and every set visited so far.
// A Run reads the automaton but never modifies it.
type Run struct {
	a       *Automaton
	current StateSet
	history g.Slice[StateSet]
}

// Run starts a simulation at the closure of the start state. Without a start
// state the run begins dead.
func (a *Automaton) Run() *Run {
	r := &Run{a: a}
	r.Reset()

	return r
}

// Reset returns the run to the closure of the start state and clears its history.
func (r *Run) Reset() {
	r.current = NewStateSet()
	if r.a.start.IsSome() {
		r.current = r.a.ClosureOf(r.a.start.Some())
	}

	r.history = g.Slice[StateSet]{r.current}
}

// Current returns a copy of the active states.
func (r *Run) Current() StateSet { return StateSet(r.current.Set().Clone()) }

// History returns the active sets visited so far, starting with the initial one.
func (r *Run) History() g.Slice[StateSet] { return r.history.Clone() }

// Step consumes one symbol. Once the run is dead it stays dead.
func (r *Run) Step(sym Symbol) *Run {
	r.current = r.a.move(r.current, sym)
	r.history.Push(r.current)

	return r
}

// Feed consumes every rune of input in order.
func (r *Run) Feed(input string) *Run {
	for _, c := range input {
		r.Step(Char(c))
	}

	return r
}

// Accepting reports whether an accepting state is active.
func (r *Run) Accepting() bool { return r.current.Set().ContainsAny(r.a.accepts.Set()) }

// Dead reports whether no state is active; no further input can be accepted.
func (r *Run) Dead() bool { return r.current.Set().Empty() }
