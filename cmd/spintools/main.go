// SPDX-License-Identifier: MIT

// Command spintools computes hyperfine level diagrams, adiabatic-passage
// sweeps and antenna matching networks from the command line.
//
// Every flag can also be set in a YAML file given by --config or through an
// environment variable SPINTOOLS_<FLAG> (dashes become underscores). Flags
// win over the environment, which wins over the file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
