// Package main provides the spfxcheck CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/spfxcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
