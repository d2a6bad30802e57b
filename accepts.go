package fa

// Accepts reports whether the automaton accepts input. Missing transitions
// are not errors: the affected branch dies. An automaton without a start
// state rejects everything.
func (a *Automaton) Accepts(input string) bool {
	if a.kind == DFA {
		return a.acceptsDeterministic(input)
	}

	return a.Run().Feed(input).Accepting()
}

// acceptsDeterministic walks the transition index one state at a time and
// rejects as soon as an edge is missing.
func (a *Automaton) acceptsDeterministic(input string) bool {
	if a.start.IsNone() {
		return false
	}

	current := a.start.Some()
	for _, c := range input {
		next, ok := a.delta[edge{from: current, sym: Char(c)}]
		if !ok {
			return false
		}

		current = next
	}

	return a.accepts.Set().Contains(current)
}
