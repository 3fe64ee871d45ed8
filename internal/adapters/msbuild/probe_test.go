package msbuild_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winbuild/internal/adapters/msbuild"
	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const regOutput = `
HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\MSBuild\ToolsVersions\12.0
    MSBuildToolsPath    REG_SZ    C:\Program Files (x86)\MSBuild\12.0\bin\
`

func regQuery(version string) domain.Command {
	return domain.Command{
		Name: "reg",
		Args: []string{
			"query",
			`HKLM\SOFTWARE\Microsoft\MSBuild\ToolsVersions\` + version,
			"/v",
			"MSBuildToolsPath",
		},
	}
}

func TestProbe_Detect_NewestInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	gomock.InOrder(
		runner.EXPECT().Output(gomock.Any(), regQuery("14.0")).Return("", errors.New("exit status 1")),
		runner.EXPECT().Output(gomock.Any(), regQuery("12.0")).Return(regOutput, nil),
	)

	probe := msbuild.NewProbe(runner, logger)
	tc, err := probe.Detect(context.Background(), domain.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, "12.0", tc.Version())
	assert.Equal(t, `C:\Program Files (x86)\MSBuild\12.0\bin\`, tc.Path())
	assert.False(t, tc.IsLegacy())
}

func TestProbe_Detect_OrdersCandidatesNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	settings := domain.DefaultSettings()
	settings.ToolchainVersions = []string{"4.0", "14.0", "12.0"}

	gomock.InOrder(
		runner.EXPECT().Output(gomock.Any(), regQuery("14.0")).Return("", errors.New("exit status 1")),
		runner.EXPECT().Output(gomock.Any(), regQuery("12.0")).Return("", errors.New("exit status 1")),
		runner.EXPECT().Output(gomock.Any(), regQuery("4.0")).
			Return("    MSBuildToolsPath    REG_SZ    C:\\Windows\\Microsoft.NET\\Framework\\v4.0.30319\\\r\n", nil),
	)

	tc, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), settings)
	require.NoError(t, err)

	assert.Equal(t, "4.0", tc.Version())
	assert.Equal(t, `C:\Windows\Microsoft.NET\Framework\v4.0.30319\`, tc.Path())
	assert.True(t, tc.IsLegacy())
}

func TestProbe_Detect_NoneFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", errors.New("exit status 1")).Times(3)

	_, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), domain.DefaultSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolchainNotFound)
}

func TestProbe_Detect_UnparsableOutputIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings()
	settings.ToolchainVersions = []string{"12.0"}

	runner.EXPECT().Output(gomock.Any(), regQuery("12.0")).Return("ERROR: The system was unable to find the specified registry key", nil)

	_, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), settings)
	assert.ErrorIs(t, err, domain.ErrToolchainNotFound)
}

func TestProbe_Detect_PinnedToolchainSkipsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings()
	settings.ToolchainVersion = "14.0"
	settings.ToolchainPath = `D:\MSBuild\14.0\bin`

	tc, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, "14.0", tc.Version())
	assert.Equal(t, `D:\MSBuild\14.0\bin`, tc.Path())
}

func TestProbe_Detect_PinnedVersionQueriesOnlyThatVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings()
	settings.ToolchainVersion = "12.0"

	runner.EXPECT().Output(gomock.Any(), regQuery("12.0")).Return(regOutput, nil)

	tc, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, "12.0", tc.Version())
}

func TestProbe_Detect_InvalidCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings()
	settings.ToolchainVersions = []string{"12.0", "current"}

	_, err := msbuild.NewProbe(runner, logger).Detect(context.Background(), settings)
	assert.ErrorIs(t, err, domain.ErrInvalidToolchainVersion)
}
