package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file expected inside every plugin directory.
const FileName = "Cargo.toml"

// DefaultDescription is rendered when a manifest declares no description.
const DefaultDescription = "No description provided."

var (
	ErrMissingName    = errors.New(`manifest is missing required field "name"`)
	ErrMissingVersion = errors.New(`manifest is missing required field "version"`)
)

// ParseError reports a manifest file that exists but cannot be used, either
// because the TOML is malformed or a required field is absent.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Manifest is the [package] table of a plugin's Cargo.toml.
type Manifest struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

// cargoFile models the slice of a Cargo.toml we care about; every other
// table (dependencies, lib, ...) is ignored by the decoder.
type cargoFile struct {
	Package Manifest `toml:"package"`
}

// DescriptionOrDefault returns the manifest description, or the fixed
// placeholder when none was declared.
func (m *Manifest) DescriptionOrDefault() string {
	if m.Description == "" {
		return DefaultDescription
	}
	return m.Description
}

// Load reads and validates the manifest inside pluginDir. A plugin directory
// without a manifest file returns (nil, nil) so callers can skip it; a
// manifest that exists but is malformed or missing required fields returns a
// *ParseError.
func Load(pluginDir string) (*Manifest, error) {
	path := filepath.Join(pluginDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var file cargoFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	m := file.Package
	if m.Name == "" {
		return nil, &ParseError{Path: path, Err: ErrMissingName}
	}
	if m.Version == "" {
		return nil, &ParseError{Path: path, Err: ErrMissingVersion}
	}

	return &m, nil
}
