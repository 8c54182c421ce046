// Package main is the entry point for the ipq CLI client.
package main

import (
	"github.com/ipartes/quote-service/cmd/ipq/cmd"
)

func main() {
	cmd.Execute()
}
