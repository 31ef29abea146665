package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termgl/cli"
	"github.com/lixenwraith/termgl/terminal"
)

func main() {
	// Restore the terminal if drawing panics mid-frame
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMGL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
