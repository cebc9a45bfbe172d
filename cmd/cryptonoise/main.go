package main

import (
	"os"

	"cryptonoise/cmd/cryptonoise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
