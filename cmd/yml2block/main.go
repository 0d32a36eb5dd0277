package main

import (
	"os"

	"github.com/schemakit/yml2block/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.ConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
