// Command rvcat is a non-interactive front-end over the session package:
// load a program and processor description, run the static analyzer, or
// drive the cycle-accurate scheduler and print its report or timeline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
