// Package main es el punto de entrada del CLI de cotización offline.
package main

import (
	"os"

	"github.com/jhoicas/printhub-api/cmd/printhub-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
