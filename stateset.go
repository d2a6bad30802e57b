package fa

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// StateSet is a set of state ids. Set exposes the g.Set algebra over the
// same storage; Key returns a canonical form usable as a map key.
type StateSet g.Set[StateID]

// NewStateSet returns a set holding ids.
func NewStateSet(ids ...StateID) StateSet { return StateSet(g.SetOf(ids...)) }

// Set returns s as a g.Set. Both share storage.
func (s StateSet) Set() g.Set[StateID] { return g.Set[StateID](s) }

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() g.Slice[StateID] {
	ids := s.Set().ToSlice()
	ids.SortBy(cmp.Cmp)

	return ids
}

// Key returns the canonical form of the set: its sorted members joined by commas.
func (s StateSet) Key() g.String {
	b := g.NewBuilder()

	for i, id := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(g.Format("{}", id))
	}

	return b.String()
}

// String formats the set as {1, 2, 3}.
func (s StateSet) String() string {
	parts := make(g.Slice[g.String], 0, len(s))
	for _, id := range s.Sorted() {
		parts = append(parts, g.Format("{}", id))
	}

	return string("{" + parts.Join(", ") + "}")
}
