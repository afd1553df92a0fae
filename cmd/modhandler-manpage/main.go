package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/jakkoble/modhandler/cmd/modhandler/commands"
	"github.com/jakkoble/modhandler/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MODHANDLER",
		Section: "1",
		Source:  "modhandler " + version.Version,
		Manual:  "modhandler manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
