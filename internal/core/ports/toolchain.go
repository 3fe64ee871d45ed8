package ports

import (
	"context"

	"go.trai.ch/winbuild/internal/core/domain"
)

// ToolchainProbe locates the installed MSBuild tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainProbe interface {
	// Detect returns the newest available toolchain.
	// It returns domain.ErrToolchainNotFound if none is installed.
	Detect(ctx context.Context, settings *domain.Settings) (domain.ToolchainCapability, error)
}

// NativeBuilder builds a single project or solution file.
type NativeBuilder interface {
	// Build runs MSBuild for the file in the given configuration and platform and waits for it to exit.
	Build(ctx context.Context, toolchain domain.ToolchainCapability, file string, mode domain.BuildMode, arch string) error
}
