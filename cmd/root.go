package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lla-docgen",
		Short: "Documentation generator for LLA plugins",
		Long: `lla-docgen scans a directory of LLA plugin projects, reads each plugin's
Cargo.toml manifest, and produces a single Markdown document listing every
plugin together with installation instructions.

Run it from the repository root so the relative plugins directory resolves
correctly.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}
