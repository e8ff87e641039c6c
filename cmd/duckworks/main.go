package main

import (
	"os"

	"github.com/goduckworks/duckworks/cmd/duckworks/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
