package thompson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/fa"
)

func TestABB(t *testing.T) {
	nfa := ABB()

	assert.Equal(t, fa.NFA, nfa.Kind())
	assert.Len(t, nfa.States(), 11)
	assert.Len(t, nfa.Transitions(), len(ABBEdges))
	assert.Equal(t, fa.StateID(0), nfa.Start().Some())
	assert.True(t, nfa.AcceptStates().Set().Eq(fa.NewStateSet(10).Set()))
	assert.False(t, nfa.Deterministic())
}

func TestAPlus(t *testing.T) {
	dfa := APlus()

	assert.Equal(t, fa.DFA, dfa.Kind())
	assert.True(t, dfa.Accepts("aaa"))
	assert.False(t, dfa.Accepts(""))
}

func TestBuild_UnknownState(t *testing.T) {
	_, err := Build(2, 0, nil, []Edge{{From: 0, To: 5, Symbol: fa.Char('a')}})
	require.Error(t, err)

	var notFound *fa.ErrStatesNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, fa.StateID(5), notFound.To)
	assert.Contains(t, err.Error(), "adding 0 -> 5")
}
