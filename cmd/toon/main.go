// Package main provides the CLI entry point for toon, a tool that
// encodes, decodes, and converts TOON (Token-Optimized Object Notation)
// documents.
package main

import (
	"fmt"
	"os"

	"go.jacobcolvin.com/toon/cmd/toon/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
