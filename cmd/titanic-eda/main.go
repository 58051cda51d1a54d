package main

// Entry point of titanic-eda
// Executes the Cobra command tree and exits non-zero on failure

import (
	"fmt"
	"os"

	"github.com/soamparkash/SCT-DS-02/cmd/titanic-eda/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
