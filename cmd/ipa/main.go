// Package main is the entry point for the ipa CLI.
package main

import (
	"os"

	"github.com/phonlab/ipa/cmd/ipa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
