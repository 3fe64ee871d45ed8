package domain

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// LegacyToolchainMajor is the oldest supported MSBuild tools major version.
// It cannot build Windows 8.1 or Windows Phone 8.1 projects.
const LegacyToolchainMajor = 4

// ToolchainCapability describes the MSBuild tools found on this machine.
// It is probed once per build and never changes afterwards.
type ToolchainCapability struct {
	version *semver.Version
	raw     string
	path    string
}

// NewToolchainCapability parses an MSBuild tools version such as "4.0" or "12.0".
func NewToolchainCapability(version, path string) (ToolchainCapability, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return ToolchainCapability{}, zerr.With(zerr.Wrap(ErrInvalidToolchainVersion, err.Error()), "version", version)
	}
	return ToolchainCapability{version: v, raw: version, path: path}, nil
}

// Version returns the tools version as declared, for example "12.0".
func (c ToolchainCapability) Version() string {
	return c.raw
}

// Path returns the MSBuildToolsPath directory.
func (c ToolchainCapability) Path() string {
	return c.path
}

// IsLegacy reports whether this is the legacy MSBuild 4.0 toolchain.
func (c ToolchainCapability) IsLegacy() bool {
	return c.version != nil && c.version.Major() == LegacyToolchainMajor
}

// NewerThan reports whether c is a newer tools version than other.
func (c ToolchainCapability) NewerThan(other ToolchainCapability) bool {
	if c.version == nil || other.version == nil {
		return c.version != nil
	}
	return c.version.GreaterThan(other.version)
}
