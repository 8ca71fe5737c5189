// Command saturn runs the given-clause saturation loop over a
// TPTP-CNF-flavored problem file and reports SZS-style status on exit,
// the same "read a file, drive a solver, report a result code" shape
// a cmd/gini-style CLI front end uses.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
