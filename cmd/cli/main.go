// Package main is the entry point for the gridin CLI.
package main

import (
	"os"

	"gridin/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
