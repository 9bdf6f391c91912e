// Package main is the entry point for the magpie CLI tool.
package main

import (
	"os"

	"github.com/pcreed/magpie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
