package main

import (
	"os"

	"github.com/jakkoble/modhandler/cmd/modhandler/commands"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/rs/zerolog"
)

func main() {
	// Quiet until flags are parsed and the logger is set up
	zerolog.SetGlobalLevel(logging.LevelFor(0))

	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
