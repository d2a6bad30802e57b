package fa_test

import (
	"strings"
	"testing"

	. "github.com/enetx/fa"
)

func TestToDOT_NFA(t *testing.T) {
	dot := string(abb().ToDOT())

	assertTrue(t, strings.HasPrefix(dot, "digraph NFA {"))
	assertTrue(t, strings.Contains(dot, `__start -> "0"`))
	assertTrue(t, strings.Contains(dot, `"10" [label="10", shape=doublecircle`))
	assertTrue(t, strings.Contains(dot, `"0" -> "1" [label=" ε ", style=dashed`))
	assertTrue(t, strings.Contains(dot, `"9" -> "10" [label=" b "]`))
	assertTrue(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOT_GroupsLabels(t *testing.T) {
	a := NewNFA().AddState(0, true, false).AddState(1, false, true)
	assertNoError(t, a.AddTransition(0, 1, Char('b')))
	assertNoError(t, a.AddTransition(0, 1, Char('a')))

	dot := string(a.ToDOT())
	assertTrue(t, strings.Contains(dot, `"0" -> "1" [label=" a,b "]`))
	assertEqual(t, strings.Count(dot, `"0" -> "1"`), 1)
}

func TestToDOT_NoStart(t *testing.T) {
	dot := string(NewDFA().AddState(0, false, false).ToDOT())

	assertTrue(t, strings.HasPrefix(dot, "digraph DFA {"))
	assertFalse(t, strings.Contains(dot, "__start"))
}
