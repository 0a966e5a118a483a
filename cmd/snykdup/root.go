// Package main provides the entry point for the snykdup CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for snykdup.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snykdup",
		Short: "Find duplicate Snyk projects in an organization",
		Long: `snykdup detects duplicate Snyk projects: multiple projects that share the
same project name under the same target (repository). Duplicates usually mean
the same repository was onboarded more than once.

The tool fetches every project of the organization from the Snyk REST API,
groups them by target and project name, and prints a JSON report to stdout
(or a file). It only detects and reports; it never merges or deletes projects.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
