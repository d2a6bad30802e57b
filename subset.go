package fa

import (
	"fmt"

	"github.com/enetx/g"
)

// pending is a DFA state waiting on the construction worklist.
type pending struct {
	id  StateID
	set StateSet
}

// ToDFA converts the automaton into an equivalent deterministic one by subset
// construction. Each DFA state stands for an epsilon-closed set of source
// states; the closure of the start state gets id 0 and new sets get the next
// free id. The alphabet is visited in rune order and the worklist is FIFO, so
// ids are reproducible. The receiver is not modified.
//
// An automaton without a start state yields an empty DFA. A hook that panics
// does not stop the construction; the panic is recorded as an *ErrHook on the
// returned automaton and reported by its HookErrors method.
func (a *Automaton) ToDFA() *Automaton {
	dfa := NewDFA()
	if a.start.IsNone() {
		return dfa
	}

	alphabet := a.Alphabet()
	ids := g.NewMap[g.String, StateID]()

	initial := a.ClosureOf(a.start.Some())
	ids[initial.Key()] = 0
	dfa.AddState(0, true, initial.Set().ContainsAny(a.accepts.Set()))

	queue := g.Slice[pending]{{id: 0, set: initial}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, sym := range alphabet {
			target := a.move(current.set, sym)
			if target.Set().Empty() {
				continue
			}

			key := target.Key()
			id, seen := ids[key]

			if !seen {
				id = StateID(len(ids))
				ids[key] = id
				dfa.AddState(id, false, target.Set().ContainsAny(a.accepts.Set()))
				queue.Push(pending{id: id, set: target})
			}

			// Each (current, sym) pair is visited once, so the edge is new.
			_ = dfa.AddTransition(current.id, id, sym)

			dfa.hookErrs.Push(a.notifySubset(current.set, target, sym, !seen)...)
		}
	}

	return dfa
}

// HookErrors returns the panics recovered from OnSubset hooks while ToDFA
// built this automaton.
func (a *Automaton) HookErrors() g.Slice[error] { return a.hookErrs.Clone() }

func (a *Automaton) notifySubset(from, to StateSet, sym Symbol, fresh bool) g.Slice[error] {
	var errs g.Slice[error]

	for _, hook := range a.onSubset {
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs.Push(&ErrHook{Hook: "OnSubset", Err: fmt.Errorf("panic: %v", r)})
				}
			}()

			hook(StateSet(from.Set().Clone()), StateSet(to.Set().Clone()), sym, fresh)
		}()
	}

	return errs
}
