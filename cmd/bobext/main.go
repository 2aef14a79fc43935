package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagFormat string

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "bobext",
	Short:         "Docstring tooling for binding extensions",
	Long:          "Bobext renders reStructuredText docstrings from YAML manifests, lints them for documentation gaps, and locates the native headers and libraries a binding builds against.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: text|json")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(findCmd)
}
