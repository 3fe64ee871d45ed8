package msbuild

import (
	"context"
	"path/filepath"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
)

// Builder implements ports.NativeBuilder by running msbuild from the probed tools path.
type Builder struct {
	runner ports.CommandRunner
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.CommandRunner) *Builder {
	return &Builder{runner: runner}
}

// Build runs msbuild for one project or solution file.
func (b *Builder) Build(
	ctx context.Context,
	toolchain domain.ToolchainCapability,
	file string,
	mode domain.BuildMode,
	arch string,
) error {
	return b.runner.Run(ctx, Command(toolchain, file, mode, arch))
}

// Command returns the msbuild invocation for a project file.
func Command(toolchain domain.ToolchainCapability, file string, mode domain.BuildMode, arch string) domain.Command {
	return domain.Command{
		Name: filepath.Join(toolchain.Path(), "msbuild"),
		Args: []string{
			file,
			"/clp:NoSummary;NoItemAndPropertyList;Verbosity=minimal",
			"/nologo",
			"/p:Configuration=" + string(mode),
			"/p:Platform=" + arch,
		},
	}
}
