package main

import (
	"os"

	"github.com/statline-dev/statline/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
