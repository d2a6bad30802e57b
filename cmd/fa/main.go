// Command fa demonstrates the fa library on the Thompson automaton for
// (a|b)*abb: epsilon closures, moves, simulation and subset construction.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
