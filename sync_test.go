package fa_test

import (
	"sync"
	"testing"

	. "github.com/enetx/fa"
)

func TestSyncAutomaton_Concurrent(t *testing.T) {
	sa := NewSync(NewNFA())
	sa.AddState(0, true, false)

	const n = 50

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)

		go func(id StateID) {
			defer wg.Done()

			sa.AddState(id, false, true)
			if err := sa.AddTransition(id-1, id, Char('a')); err != nil {
				// id-1 may not exist yet; link from the start state instead.
				_ = sa.AddTransition(0, id, Char('a'))
			}

			sa.Accepts("a")
			sa.Closure(NewStateSet(0))
		}(StateID(i))
	}

	wg.Wait()

	assertTrue(t, sa.Accepts("a"))
	assertEqual(t, sa.Kind(), NFA)
	assertEqual(t, sa.Alphabet().Len(), 1)
	assertTrue(t, sa.ToDFA().Accepts("a"))
}

func TestSyncAutomaton_Machine(t *testing.T) {
	machines := []Machine{abb(), NewSync(abb())}

	for _, m := range machines {
		assertFalse(t, m.Deterministic())
		assertTrue(t, m.Accepts("abb"))
		assertSet(t, m.Closure(NewStateSet(3)), 1, 2, 3, 4, 6, 7)
		assertSet(t, m.Move(NewStateSet(5), Char('a')), 1, 2, 3, 4, 6, 7, 8)
		assertTrue(t, m.ToDFA().Deterministic())
		assertTrue(t, m.ToDOT().Contains("digraph NFA"))
		assertError(t, m.AddTransition(0, 42, Char('a')))
	}
}
