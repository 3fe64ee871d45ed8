package config

// Settingsfile represents the structure of the winbuild.yaml settings file.
type Settingsfile struct {
	Version              string       `yaml:"version"`
	Archs                []string     `yaml:"archs"`
	Toolchain            ToolchainDTO `yaml:"toolchain"`
	PlatformConfigScript string       `yaml:"platformConfigScript"`
}

// ToolchainDTO represents the MSBuild toolchain section.
type ToolchainDTO struct {
	Versions []string `yaml:"versions"`
	Version  string   `yaml:"version"`
	Path     string   `yaml:"path"`
}
