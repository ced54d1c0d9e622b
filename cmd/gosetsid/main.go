// Package main is the entry point for the gosetsid application
package main

import (
	"os"

	"gosetsid/cmd/gosetsid/commands"
	"gosetsid/internal/detach"
)

func main() {
	// The re-executed duplicate skips the CLI entirely: it is mid-detach,
	// already in its new session, and parses its arguments positionally.
	if detach.IsChild() {
		os.Exit(detach.RunChild(os.Args[1:]))
	}

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
