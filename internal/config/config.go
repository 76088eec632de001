package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	PluginsDir     string `json:"plugins_dir"`
	OutputFile     string `json:"output_file"`
	RepositoryURL  string `json:"repository_url"`
	InstallCommand string `json:"install_command"`
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		PluginsDir:     "plugins",
		OutputFile:     "plugins.md",
		RepositoryURL:  "https://github.com/triyanox/lla",
		InstallCommand: "lla",
	}

	if configPath == "" {
		configPath = os.Getenv("LLA_DOCGEN_CONFIG")
		if configPath == "" {
			configPath = "lla-docgen.json"
		}
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	return cfg, nil
}
