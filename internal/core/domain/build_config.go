package domain

// BuildConfig is the state shared by the resolve, plan and execute steps of one build.
// It is assembled once the toolchain has been probed and is read-only afterwards.
type BuildConfig struct {
	// Root is the absolute project directory.
	Root      string
	Request   BuildRequest
	Toolchain ToolchainCapability
}
