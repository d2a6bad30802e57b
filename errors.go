package fa

import "fmt"

// ErrStatesNotFound is returned when AddTransition references a state id
// that was never added to the automaton.
type ErrStatesNotFound struct {
	From StateID
	To   StateID
}

func (e *ErrStatesNotFound) Error() string {
	return fmt.Sprintf("fa: states not found: from %d, to %d", e.From, e.To)
}

// ErrInvalidEpsilonInDFA is returned when an epsilon transition is added to a
// deterministic automaton.
type ErrInvalidEpsilonInDFA struct {
	From StateID
	To   StateID
}

func (e *ErrInvalidEpsilonInDFA) Error() string {
	return fmt.Sprintf("fa: DFA cannot have epsilon transitions (%d -> %d)", e.From, e.To)
}

// ErrNondeterministicTransition is returned when a deterministic automaton
// already has a transition from the same state on the same symbol.
// Existing is the destination of the transition already present.
type ErrNondeterministicTransition struct {
	From     StateID
	Symbol   Symbol
	Existing StateID
}

func (e *ErrNondeterministicTransition) Error() string {
	return fmt.Sprintf("fa: DFA already has a transition from state %d on %q (to %d)",
		e.From, e.Symbol.String(), e.Existing)
}

// ErrInvalidSymbol is returned by ParseSymbol when the text is neither an
// epsilon alias nor a single rune.
type ErrInvalidSymbol struct {
	Text string
}

func (e *ErrInvalidSymbol) Error() string {
	return fmt.Sprintf("fa: invalid symbol %q; want a single character or epsilon", e.Text)
}

// ErrHook records a panic recovered from a hook. It wraps the recovered
// value so it can be inspected with errors.Is and errors.As.
type ErrHook struct {
	// Hook names the registration method, e.g. "OnSubset".
	Hook string
	Err  error
}

func (e *ErrHook) Error() string {
	return fmt.Sprintf("fa: error in %s hook: %v", e.Hook, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrHook) Unwrap() error { return e.Err }
