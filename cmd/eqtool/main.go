// Command eqtool runs the parametric EQ engine offline.
//
// Usage:
//
//	eqtool <command> [flags]
//
// Examples:
//
//	eqtool params --bands 4
//	eqtool response --set band0.freq=1000 --set band0.gain=6 --points 16
//	eqtool render -i in.wav -o out.wav --set band0.type=lowshelf --set band0.gain=-3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
