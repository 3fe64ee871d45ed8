// Package project inspects scaffolded Cordova Windows project directories.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// MarkerExt is the extension of the shared project file every scaffolded project contains.
const MarkerExt = ".shproj"

// DefaultPlatformConfigScript is the ApplyPlatformConfig location relative to the project root.
var DefaultPlatformConfigScript = filepath.Join("cordova", "lib", "ApplyPlatformConfig.ps1")

// Inspector implements ports.ProjectInspector on the local filesystem.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// IsProject reports whether root contains a *.shproj file.
// A missing root is not an error; it is simply not a project.
func (i *Inspector) IsProject(root string) (bool, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read project directory"), "path", root)
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == MarkerExt {
			return true, nil
		}
	}
	return false, nil
}

// PlatformConfigScript returns the absolute path of the ApplyPlatformConfig script.
func (i *Inspector) PlatformConfigScript(root, override string) (string, error) {
	rel := DefaultPlatformConfigScript
	if override != "" {
		rel = override
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, rel)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve platform config script"), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrPlatformConfigNotFound, abs), "path", abs)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat platform config script"), "path", abs)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrPlatformConfigNotFound, abs), "path", abs)
	}
	return abs, nil
}
