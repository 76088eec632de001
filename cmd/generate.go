package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/triyanox/lla-docgen/internal/config"
	"github.com/triyanox/lla-docgen/internal/docgen"
)

var successStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("46"))

// newGenerateCommand creates the generate subcommand
func newGenerateCommand() *cobra.Command {
	var (
		configPath string
		pluginsDir string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the plugin documentation file",
		Long: `Generate scans the plugins directory, parses every Cargo.toml manifest it
finds, and writes a Markdown document describing each plugin. Plugin
directories without a manifest file are skipped.

Example:
  lla-docgen generate
  lla-docgen generate --plugins-dir ./plugins --output docs/plugins.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if pluginsDir != "" {
				cfg.PluginsDir = pluginsDir
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}

			if err := docgen.New(cfg).Generate(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Generated %s", cfg.OutputFile)))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a lla-docgen.json config file")
	cmd.Flags().StringVar(&pluginsDir, "plugins-dir", "", `directory containing plugin projects (default "plugins")`)
	cmd.Flags().StringVar(&outputFile, "output", "", `path of the generated Markdown file (default "plugins.md")`)

	return cmd
}
