// Package shell provides the command runner adapter.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run starts the command and waits for it to exit.
// Stdout lines are logged at debug level and stderr lines at error level. When ctx
// carries a telemetry vertex the raw output is copied to it as well.
// No timeout is applied; a hung process blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, command domain.Command) error {
	r.logger.Debug(fmt.Sprintf("Running %s with %s", command.Name, strings.Join(command.Args, ",")))

	cmd := newCmd(ctx, command)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr")
	}

	var outSink, errSink io.Writer = io.Discard, io.Discard
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		outSink, errSink = vertex.Stdout(), vertex.Stderr()
	}

	if err := cmd.Start(); err != nil {
		return commandError(zerr.Wrap(err, "failed to start command"), command, -1)
	}

	var g errgroup.Group
	g.Go(func() error {
		return pump(stdout, outSink, r.logger.Debug)
	})
	g.Go(func() error {
		return pump(stderr, errSink, func(line string) { r.logger.Error(zerr.New(line)) })
	})
	// Both pipes must be drained before Wait closes them.
	pumpErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return commandError(err, command, exitCode(err))
	}
	if pumpErr != nil {
		return zerr.Wrap(pumpErr, "failed to read command output")
	}
	return nil
}

// Output runs the command and returns its standard output.
// Stderr is logged at debug level since probes expect some commands to fail.
func (r *Runner) Output(ctx context.Context, command domain.Command) (string, error) {
	r.logger.Debug(fmt.Sprintf("Running %s with %s", command.Name, strings.Join(command.Args, ",")))

	cmd := newCmd(ctx, command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			r.logger.Debug(msg)
		}
		return stdout.String(), commandError(err, command, exitCode(err))
	}
	return stdout.String(), nil
}

func newCmd(ctx context.Context, command domain.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // command is built by the app
	if command.Dir != "" {
		cmd.Dir = command.Dir
	}
	return cmd
}

// pump copies r to sink and passes every line to log, without the trailing newline.
func pump(r io.Reader, sink io.Writer, log func(string)) error {
	scanner := bufio.NewScanner(io.TeeReader(r, sink))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		log(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return scanner.Err()
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func commandError(err error, command domain.Command, code int) error {
	msg := fmt.Sprintf("Error code %d for command: %s with args: %s",
		code, command.Name, strings.Join(command.Args, ","))
	return zerr.With(zerr.With(zerr.Wrap(err, msg), "exit_code", code), "command", command.Name)
}
