package docgen

import (
	"strings"
	"text/template"
)

// documentTemplate mirrors the layout of the generated plugins.md: a fixed
// header with bulk install instructions, then one section per plugin.
const documentTemplate = "# LLA Plugins\n" +
	"\n" +
	"This document lists all available plugins for LLA and provides installation instructions.\n" +
	"\n" +
	"## Installation\n" +
	"\n" +
	"You can install all plugins at once using:\n" +
	"\n" +
	"```bash\n" +
	"{{.InstallCommand}} install --git {{.RepositoryURL}}\n" +
	"```\n" +
	"\n" +
	"Or you can install individual plugins as described below.\n" +
	"\n" +
	"## Available Plugins\n" +
	"\n" +
	"{{range .Plugins}}### {{.Name}}\n" +
	"\n" +
	"**Description:** {{.Description}}\n" +
	"\n" +
	"**Version:** {{.Version}}\n" +
	"\n" +
	"**Installation Options:**\n" +
	"\n" +
	"1. Using LLA install command:\n" +
	"```bash\n" +
	"{{$.InstallCommand}} install --dir path/to/lla/plugins/{{.DirName}}\n" +
	"```\n" +
	"\n" +
	"2. Manual installation:\n" +
	"```bash\n" +
	"git clone {{$.RepositoryURL}}\n" +
	"cd lla/plugins/{{.DirName}}\n" +
	"cargo build --release\n" +
	"```\n" +
	"\n" +
	"Then, copy the generated `.so`, `.dll`, or `.dylib` file from the `target/release` directory to your LLA plugins directory.\n" +
	"\n" +
	"{{end}}"

var docTemplate = template.Must(template.New("plugins").Parse(documentTemplate))

type documentData struct {
	RepositoryURL  string
	InstallCommand string
	Plugins        []sectionData
}

type sectionData struct {
	Name        string
	Description string
	Version     string
	DirName     string
}

// Render produces the full Markdown document for the given plugins.
func (g *Generator) Render(plugins []Plugin) (string, error) {
	data := documentData{
		RepositoryURL:  g.cfg.RepositoryURL,
		InstallCommand: g.cfg.InstallCommand,
	}
	for _, p := range plugins {
		data.Plugins = append(data.Plugins, sectionData{
			Name:        p.Manifest.Name,
			Description: p.Manifest.DescriptionOrDefault(),
			Version:     p.Manifest.Version,
			DirName:     p.DirName,
		})
	}

	var buf strings.Builder
	if err := docTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
