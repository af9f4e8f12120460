package main

import (
	_ "embed"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed demo.txt
var demoScript string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through notes, comments and soft deletion",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := runConsole(strings.NewReader(demoScript), cmd.OutOrStdout()); err != nil {
			fatal("Error running demo", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
