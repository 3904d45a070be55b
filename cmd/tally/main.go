package main

import (
	"os"

	"github.com/tally-ledger/tally/internal/commands"
	"github.com/tally-ledger/tally/internal/config"
)

func main() {
	config.LoadDotEnv()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
