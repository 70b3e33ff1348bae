package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "taskline failed: %v\n", err)
		os.Exit(1)
	}
}
