// Package docgen turns a directory of LLA plugin projects into a single
// Markdown document with per-plugin installation instructions.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/triyanox/lla-docgen/internal/config"
	"github.com/triyanox/lla-docgen/internal/manifest"
)

// Plugin pairs a discovered plugin directory with its parsed manifest.
type Plugin struct {
	DirName  string
	Manifest *manifest.Manifest
}

// Generator renders the plugin documentation file from a plugins directory.
type Generator struct {
	cfg *config.Config
}

// New creates a generator for the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// ListPluginDirs returns the immediate subdirectories of the plugins root.
// Names are sorted so output is stable across filesystems.
func (g *Generator) ListPluginDirs() ([]string, error) {
	entries, err := os.ReadDir(g.cfg.PluginsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugins directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	return dirs, nil
}

// Discover lists plugin directories and parses each manifest. Directories
// without a manifest file are skipped; the first malformed manifest aborts
// the run.
func (g *Generator) Discover() ([]Plugin, error) {
	dirs, err := g.ListPluginDirs()
	if err != nil {
		return nil, err
	}

	var plugins []Plugin
	for _, dir := range dirs {
		m, err := manifest.Load(filepath.Join(g.cfg.PluginsDir, dir))
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		plugins = append(plugins, Plugin{DirName: dir, Manifest: m})
	}

	return plugins, nil
}

// Generate writes the rendered document to the configured output file. The
// output is only touched after every manifest has parsed and the whole
// document has rendered, so a failing run leaves any previous file intact.
func (g *Generator) Generate() error {
	plugins, err := g.Discover()
	if err != nil {
		return err
	}

	doc, err := g.Render(plugins)
	if err != nil {
		return fmt.Errorf("failed to render documentation: %w", err)
	}

	if err := os.WriteFile(g.cfg.OutputFile, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.cfg.OutputFile, err)
	}

	return nil
}
