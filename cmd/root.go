// Package cmd implements the CLI commands for animalpage using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh commands
// with their own flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "animalpage",
		Short: "animalpage — render animal cards from JSON into an HTML template",
		Long: `animalpage reads a JSON array of animal records, renders one card per
record and substitutes the cards for the placeholder in an HTML template.

Usage:
  animalpage generate [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
