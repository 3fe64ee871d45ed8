// Package config provides the settings loader for winbuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the project root.
const DefaultFilename = "winbuild.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a Loader for winbuild.yaml.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, Logger: logger}
}

// Load reads the settings from the given project root.
func (l *Loader) Load(root string) (*domain.Settings, error) {
	path := filepath.Join(root, l.Filename)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultSettings(), nil
	}

	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	if l.Logger != nil {
		l.Logger.Debug("Loaded settings from " + path)
	}
	return settings, nil
}

// Load reads a settings file from the given path.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read settings file")
	}

	var file Settingsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	return toSettings(&file, path)
}

func toSettings(file *Settingsfile, path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if len(file.Archs) > 0 {
		settings.Architectures = file.Archs
	}
	if len(file.Toolchain.Versions) > 0 {
		settings.ToolchainVersions = file.Toolchain.Versions
	}

	// A pinned path without a version cannot be classified as legacy or not.
	if file.Toolchain.Path != "" && file.Toolchain.Version == "" {
		return nil, zerr.With(zerr.New("toolchain.path requires toolchain.version"), "path", path)
	}
	settings.ToolchainVersion = file.Toolchain.Version
	settings.ToolchainPath = file.Toolchain.Path
	settings.PlatformConfigScript = file.PlatformConfigScript

	return settings, nil
}
