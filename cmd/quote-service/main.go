// Package main is the entry point for the quote-service server.
package main

import (
	"os"

	"github.com/ipartes/quote-service/cmd/quote-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
