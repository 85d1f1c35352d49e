// Package main is the entry point for the allcascais server.
package main

import (
	"os"

	"github.com/Chiosap01/allcascais/cmd/allcascais/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
