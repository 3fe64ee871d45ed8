package domain

// DefaultToolchainVersions are the MSBuild tools versions probed, newest first.
var DefaultToolchainVersions = []string{"14.0", "12.0", "4.0"}

// Settings holds the optional per-project tool settings.
type Settings struct {
	// Architectures replaces the default architecture list when --archs is not given.
	Architectures []string
	// ToolchainVersions lists the MSBuild tools versions to probe, newest first.
	ToolchainVersions []string
	// ToolchainVersion and ToolchainPath pin the toolchain and skip probing the registry.
	ToolchainVersion string
	ToolchainPath    string
	// PlatformConfigScript overrides the ApplyPlatformConfig.ps1 location, relative to the project root.
	PlatformConfigScript string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	versions := make([]string, len(DefaultToolchainVersions))
	copy(versions, DefaultToolchainVersions)
	return &Settings{ToolchainVersions: versions}
}
