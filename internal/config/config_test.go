package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.NoError(t, err)
	assert.Equal(t, "plugins", cfg.PluginsDir)
	assert.Equal(t, "plugins.md", cfg.OutputFile)
	assert.Equal(t, "https://github.com/triyanox/lla", cfg.RepositoryURL)
	assert.Equal(t, "lla", cfg.InstallCommand)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lla-docgen.json")
	contents := `{"plugins_dir": "custom/plugins", "output_file": "docs/plugins.md"}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "custom/plugins", cfg.PluginsDir)
	assert.Equal(t, "docs/plugins.md", cfg.OutputFile)

	// Fields absent from the file keep their defaults
	assert.Equal(t, "https://github.com/triyanox/lla", cfg.RepositoryURL)
	assert.Equal(t, "lla", cfg.InstallCommand)
}

func TestLoad_PathFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env-config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"install_command": "lla-dev"}`), 0o644))
	t.Setenv("LLA_DOCGEN_CONFIG", path)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "lla-dev", cfg.InstallCommand)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lla-docgen.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid config file")
}
