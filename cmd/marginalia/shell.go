package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/marginalia"
	"github.com/aretw0/marginalia/internal/console"
	"github.com/spf13/cobra"
)

var (
	scriptFile string
	strict     bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run note and comment commands from stdin or a script",
	Long: `Shell reads one command per line and prints each result.
State lives only as long as the command runs. Type "help" for the command list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		if scriptFile != "" {
			f, err := os.Open(scriptFile)
			if err != nil {
				fatal("Error opening script", err)
			}
			defer f.Close()
			in = f
		}

		failed, err := runConsole(in, cmd.OutOrStdout())
		if err != nil {
			fatal("Error running commands", err)
		}
		if strict && failed > 0 {
			os.Exit(1)
		}
	},
}

func runConsole(in io.Reader, out io.Writer) (int, error) {
	f, err := console.ParseFormat(format)
	if err != nil {
		return 0, err
	}

	s := marginalia.New(marginalia.WithLogger(slog.Default()))
	c := console.New(s, out,
		console.WithFormat(f),
		console.WithLogger(slog.Default()),
	)
	return c.Run(in)
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVar(&scriptFile, "file", "", "Read commands from a file instead of stdin")
	shellCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 if any command failed")
}
