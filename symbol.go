package fa

import "github.com/enetx/g/cmp"

// Symbol labels a transition. It is either Epsilon or a single input rune
// built with Char. Symbols are comparable and usable as map keys.
type Symbol struct {
	r   rune
	eps bool
}

// Epsilon labels a transition taken without consuming input.
var Epsilon = Symbol{eps: true}

// Char returns the symbol matching the rune r.
func Char(r rune) Symbol { return Symbol{r: r} }

// IsEpsilon reports whether s is the empty move.
func (s Symbol) IsEpsilon() bool { return s.eps }

// Rune returns the input rune of s; it is zero for Epsilon.
func (s Symbol) Rune() rune { return s.r }

func (s Symbol) String() string {
	if s.eps {
		return "ε"
	}

	return string(s.r)
}

// ParseSymbol converts the textual form of a symbol. The Greek small letter
// epsilon, its escape \u03B5 and the NUL escape `\0` all denote Epsilon;
// any other single rune is a Char.
func ParseSymbol(text string) (Symbol, error) {
	switch text {
	case "ε", `\u03B5`, `\0`:
		return Epsilon, nil
	}

	runes := []rune(text)
	if len(runes) != 1 {
		return Symbol{}, &ErrInvalidSymbol{Text: text}
	}

	if runes[0] == 0 {
		return Epsilon, nil
	}

	return Char(runes[0]), nil
}

// compareSymbols orders Epsilon before every Char and Chars by rune.
func compareSymbols(a, b Symbol) cmp.Ordering {
	switch {
	case a.eps && b.eps:
		return cmp.Equal
	case a.eps:
		return cmp.Less
	case b.eps:
		return cmp.Greater
	}

	return cmp.Cmp(a.r, b.r)
}
