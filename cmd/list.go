package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/triyanox/lla-docgen/internal/config"
	"github.com/triyanox/lla-docgen/internal/docgen"
)

// newListCommand creates the list subcommand
func newListCommand() *cobra.Command {
	var (
		configPath string
		pluginsDir string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered plugins without writing any file",
		Long: `List discovers plugins the same way generate does and prints a table of
their names, versions, and descriptions to the terminal. Nothing is written
to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if pluginsDir != "" {
				cfg.PluginsDir = pluginsDir
			}

			plugins, err := docgen.New(cfg).Discover()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPluginTable(plugins))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a lla-docgen.json config file")
	cmd.Flags().StringVar(&pluginsDir, "plugins-dir", "", `directory containing plugin projects (default "plugins")`)

	return cmd
}

// renderPluginTable renders the plugin listing table
func renderPluginTable(plugins []docgen.Plugin) string {
	if len(plugins) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("No plugins found.")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render(fmt.Sprintf("%-28s │ %-10s │ %s", "NAME", "VERSION", "DESCRIPTION"))

	rows := []string{header}
	for _, p := range plugins {
		row := fmt.Sprintf("%-28s │ %-10s │ %s",
			truncateString(p.Manifest.Name, 28),
			truncateString(p.Manifest.Version, 10),
			truncateString(p.Manifest.DescriptionOrDefault(), 60),
		)
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncateString truncates a string to maxLen characters with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
