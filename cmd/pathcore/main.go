// Command pathcore is an illustrative CLI over package orchestrator. It
// contains no pathfinding logic of its own: every subcommand parses flags,
// loads JSON via package ioformat, and calls straight into orchestrator.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
