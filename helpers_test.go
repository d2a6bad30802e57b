package fa_test

import (
	"testing"

	. "github.com/enetx/fa"
	"github.com/enetx/fa/internal/thompson"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

func assertFalse(t *testing.T, cond bool) {
	t.Helper()
	if cond {
		t.Fatalf("expected false, got true")
	}
}

func assertSet(t *testing.T, got StateSet, want ...StateID) {
	t.Helper()
	if !got.Set().Eq(NewStateSet(want...).Set()) {
		t.Fatalf("expected %v, got %v", NewStateSet(want...), got)
	}
}

// abb is the Thompson NFA for (a|b)*abb.
func abb() *Automaton { return thompson.ABB() }

var (
	acceptedByABB = []string{"abb", "aabb", "babb", "aaabb", "bbbabb"}
	rejectedByABB = []string{"", "a", "ab", "abba"}
)
