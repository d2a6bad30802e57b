package fa

import "github.com/enetx/g"

// NewSync wraps a for use from multiple goroutines. The caller must not use a
// directly afterwards.
func NewSync(a *Automaton) *SyncAutomaton { return &SyncAutomaton{a: a} }

// Kind is the thread-safe version of Automaton.Kind.
func (sa *SyncAutomaton) Kind() Kind { return sa.a.Kind() }

// AddState is the thread-safe version of Automaton.AddState.
func (sa *SyncAutomaton) AddState(id StateID, start, accept bool) *SyncAutomaton {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	sa.a.AddState(id, start, accept)

	return sa
}

// AddTransition is the thread-safe version of Automaton.AddTransition.
func (sa *SyncAutomaton) AddTransition(from, to StateID, sym Symbol) error {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	return sa.a.AddTransition(from, to, sym)
}

// Alphabet is the thread-safe version of Automaton.Alphabet.
func (sa *SyncAutomaton) Alphabet() g.Slice[Symbol] {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Alphabet()
}

// Closure is the thread-safe version of Automaton.Closure.
func (sa *SyncAutomaton) Closure(set StateSet) StateSet {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Closure(set)
}

// Move is the thread-safe version of Automaton.Move.
func (sa *SyncAutomaton) Move(set StateSet, sym Symbol) StateSet {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Move(set, sym)
}

// Accepts is the thread-safe version of Automaton.Accepts.
func (sa *SyncAutomaton) Accepts(input string) bool {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Accepts(input)
}

// Deterministic is the thread-safe version of Automaton.Deterministic.
func (sa *SyncAutomaton) Deterministic() bool {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Deterministic()
}

// ToDFA is the thread-safe version of Automaton.ToDFA.
// The returned DFA is not shared and needs no locking.
func (sa *SyncAutomaton) ToDFA() *Automaton {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.ToDFA()
}

// ToDOT is the thread-safe version of Automaton.ToDOT.
func (sa *SyncAutomaton) ToDOT() g.String {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.ToDOT()
}
