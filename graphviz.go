package fa

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the automaton for visualization.
func (a *Automaton) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph " + g.String(a.kind.String()) + " {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if a.start.IsSome() {
		b.WriteString("  __start [shape=point, style=invis];\n")
		b.WriteString(g.Format("  __start -> \"{}\" [label=\" start\"];\n\n", a.start.Some()))
	}

	for _, state := range a.States() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state.ID))

		if a.accepts.Set().Contains(state.ID) {
			attrs.Push("shape=doublecircle", "fillcolor=\"#90ee90\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state.ID, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	type pair struct{ from, to StateID }

	var order g.Slice[pair]

	labels := g.NewMap[pair, g.Slice[g.String]]()
	epsilon := g.NewSet[pair]()

	for _, t := range a.Transitions() {
		key := pair{from: t.From, to: t.To}
		if _, ok := labels[key]; !ok {
			order.Push(key)
		}

		label := g.String(t.Symbol.String())
		labels.Entry(key).
			AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
			OrInsert(g.SliceOf(label))

		if t.IsEpsilon() {
			epsilon.Insert(key)
		}
	}

	for _, key := range order {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\" {} \"", labels[key].Join(",")))

		if epsilon.Contains(key) {
			attrs.Push("style=dashed", "color=\"#888888\"")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", key.from, key.to, attrs.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}
