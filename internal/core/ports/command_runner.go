// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/winbuild/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output to the logger.
	// It returns an error if the process cannot start or exits with a non-zero code.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
