// Package main is the entry point for the stay-catalog service.
package main

import (
	"fmt"
	"os"

	"github.com/kwalters/stay-catalog/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
