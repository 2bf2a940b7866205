// Package main provides the entry point for the sortbench CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sortlab/cmd/sortbench/commands"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
