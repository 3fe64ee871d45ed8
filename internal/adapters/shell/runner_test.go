package shell_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winbuild/internal/adapters/shell"
	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/winbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	// The first Debug call announces the command, then one call per output line.
	gomock.InOrder(
		mockLogger.EXPECT().Debug(gomock.Any()).Times(1),
		mockLogger.EXPECT().Debug("line1").Times(1),
		mockLogger.EXPECT().Debug("line2").Times(1),
	)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)
	// Expect concatenated "part1part2"
	mockLogger.EXPECT().Debug("part1part2").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2"},
	})
	require.NoError(t, err)
}

func TestRunner_Run_StderrLoggedAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, "error CS1002: ; expected", err.Error())
	}).Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'error CS1002: ; expected' >&2"},
	})
	require.NoError(t, err)
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	var lines []string

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{Name: "pwd", Dir: tmpDir})
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], filepath.Base(tmpDir)))
}

func TestRunner_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "exit 42"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error code 42 for command: sh with args: -c,exit 42")
}

func TestRunner_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), domain.Command{Name: "nonexistent-command-xyz123"})
	require.Error(t, err)
}

type bufferVertex struct {
	stdout, stderr bytes.Buffer
}

func (v *bufferVertex) Stdout() io.Writer { return &v.stdout }

func (v *bufferVertex) Stderr() io.Writer { return &v.stderr }

func (v *bufferVertex) Log(_ domain.LogLevel, _ string) {}

func (v *bufferVertex) Complete(_ error) {}

func TestRunner_Run_CopiesOutputToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	vertex := &bufferVertex{}
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	runner := shell.NewRunner(mockLogger)
	err := runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "echo out; echo err >&2"}})
	require.NoError(t, err)

	assert.Equal(t, "out\n", vertex.stdout.String())
	assert.Equal(t, "err\n", vertex.stderr.String())
}

func TestRunner_Output(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo '    MSBuildToolsPath    REG_SZ    C:\\MSBuild\\12.0\\bin\\'"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "MSBuildToolsPath")

	_, err = runner.Output(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "echo nope >&2; exit 1"}})
	require.Error(t, err)
}
