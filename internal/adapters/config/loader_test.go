package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winbuild/internal/adapters/config"
	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, config.DefaultFilename), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return tmpDir
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
archs: ["arm", "x86"]
toolchain:
  versions: ["12.0", "4.0"]
platformConfigScript: scripts/Apply.ps1
`
	tmpDir := writeSettings(t, content)

	settings, err := config.Load(filepath.Join(tmpDir, config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, []string{"arm", "x86"}, settings.Architectures)
	assert.Equal(t, []string{"12.0", "4.0"}, settings.ToolchainVersions)
	assert.Equal(t, "scripts/Apply.ps1", settings.PlatformConfigScript)
	assert.Empty(t, settings.ToolchainPath)
}

func TestLoad_PinnedToolchain(t *testing.T) {
	content := `
toolchain:
  version: "4.0"
  path: 'C:\Windows\Microsoft.NET\Framework\v4.0.30319\'
`
	tmpDir := writeSettings(t, content)

	settings, err := config.Load(filepath.Join(tmpDir, config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, "4.0", settings.ToolchainVersion)
	assert.Equal(t, `C:\Windows\Microsoft.NET\Framework\v4.0.30319\`, settings.ToolchainPath)
	assert.Equal(t, domain.DefaultToolchainVersions, settings.ToolchainVersions)
}

func TestLoad_PathWithoutVersion(t *testing.T) {
	tmpDir := writeSettings(t, "toolchain:\n  path: /opt/msbuild\n")

	_, err := config.Load(filepath.Join(tmpDir, config.DefaultFilename))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toolchain.path requires toolchain.version")
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := writeSettings(t, "archs: [arm\n")

	_, err := config.Load(filepath.Join(tmpDir, config.DefaultFilename))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_ReadsProjectRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)

	tmpDir := writeSettings(t, "archs: [\"any cpu\"]\n")
	loader := config.NewLoader(mockLogger)

	settings, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"any cpu"}, settings.Architectures)
}
