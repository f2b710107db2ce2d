// Package main is the entry point for the stagehand CLI binary.
package main

import (
	"fmt"
	"os"

	"github.com/irahardianto/stagehand/cmd/stagehand/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stagehand: %v\n", err)
		os.Exit(1)
	}
}
