package fa

import "github.com/enetx/g"

// Closure returns the epsilon closure of set: every state reachable from a
// member of set through zero or more epsilon transitions. set is not modified.
func (a *Automaton) Closure(set StateSet) StateSet {
	result := set.Set().Clone()

	stack := set.Sorted()
	for stack.NotEmpty() {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range a.outgoing[current] {
			if !t.IsEpsilon() || result.Contains(t.To) {
				continue
			}

			result.Insert(t.To)
			stack.Push(t.To)
		}
	}

	return StateSet(result)
}

// ClosureOf returns the epsilon closure of the single state id.
func (a *Automaton) ClosureOf(id StateID) StateSet {
	return a.Closure(NewStateSet(id))
}

// Move returns the states reachable from set by consuming sym: the closure
// of set is stepped along every sym-labeled edge and each destination is
// closed again. Move on Epsilon or on a symbol outside the alphabet is empty.
func (a *Automaton) Move(set StateSet, sym Symbol) StateSet {
	return a.move(a.Closure(set), sym)
}

// Next is Move from the single state id.
func (a *Automaton) Next(id StateID, sym Symbol) StateSet {
	return a.Move(NewStateSet(id), sym)
}

// move steps an already closed set.
func (a *Automaton) move(closed StateSet, sym Symbol) StateSet {
	if sym.IsEpsilon() || !a.alphabet.Contains(sym) {
		return NewStateSet()
	}

	targets := g.NewSet[StateID]()
	for id := range closed {
		for _, t := range a.outgoing[id] {
			if t.Symbol == sym {
				targets.Insert(t.To)
			}
		}
	}

	return a.Closure(StateSet(targets))
}
