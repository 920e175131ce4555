package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cleaner",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cleaner version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
