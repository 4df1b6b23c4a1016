package main

import (
	"os"

	"github.com/pagosx-dev/pagosx/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
