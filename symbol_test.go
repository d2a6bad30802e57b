package fa_test

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/enetx/fa"
)

func TestParseSymbol(t *testing.T) {
	for _, text := range []string{"ε", `\u03B5`, `\0`, "\x00"} {
		sym, err := ParseSymbol(text)
		assertNoError(t, err)
		assertTrue(t, sym.IsEpsilon())
	}

	sym, err := ParseSymbol("a")
	assertNoError(t, err)
	assertEqual(t, sym, Char('a'))
	assertEqual(t, sym.Rune(), 'a')
	assertFalse(t, sym.IsEpsilon())

	sym, err = ParseSymbol("λ")
	assertNoError(t, err)
	assertEqual(t, sym, Char('λ'))

	for _, text := range []string{"", "ab", "eps"} {
		_, err := ParseSymbol(text)

		var invalid *ErrInvalidSymbol
		assertTrue(t, errors.As(err, &invalid))
		assertEqual(t, invalid.Text, text)
	}
}

func TestSymbol_String(t *testing.T) {
	assertEqual(t, Epsilon.String(), "ε")
	assertEqual(t, Char('z').String(), "z")
	assertTrue(t, Epsilon != Char(0))
}

func TestJSON_StateSet(t *testing.T) {
	data, err := json.Marshal(NewStateSet(7, 1, 4))
	assertNoError(t, err)
	assertEqual(t, string(data), "[1,4,7]")

	var s StateSet
	assertNoError(t, json.Unmarshal([]byte("[3, 2, 3]"), &s))
	assertSet(t, s, 2, 3)

	assertError(t, json.Unmarshal([]byte(`"x"`), &s))
}

func TestJSON_Symbol(t *testing.T) {
	data, err := json.Marshal([]Symbol{Char('a'), Epsilon})
	assertNoError(t, err)
	assertEqual(t, string(data), `["a","ε"]`)

	var syms []Symbol
	assertNoError(t, json.Unmarshal(data, &syms))
	assertEqual(t, syms[0], Char('a'))
	assertEqual(t, syms[1], Epsilon)

	assertError(t, json.Unmarshal([]byte(`["ab"]`), &syms))
}
