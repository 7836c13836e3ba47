package main

import (
	"os"

	"github.com/mass10/cargobump/internal/diag"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		diag.Errorf(os.Stdout, "%v", err)
		os.Exit(1)
	}
}
