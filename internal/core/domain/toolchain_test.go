package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winbuild/internal/core/domain"
)

func toolchain(t *testing.T, version string) domain.ToolchainCapability {
	t.Helper()
	tc, err := domain.NewToolchainCapability(version, `C:\MSBuild\`+version+`\bin\`)
	require.NoError(t, err)
	return tc
}

func TestToolchainCapability(t *testing.T) {
	tc := toolchain(t, "12.0")

	assert.Equal(t, "12.0", tc.Version())
	assert.Equal(t, `C:\MSBuild\12.0\bin\`, tc.Path())
	assert.False(t, tc.IsLegacy())
}

func TestToolchainCapability_IsLegacy(t *testing.T) {
	assert.True(t, toolchain(t, "4.0").IsLegacy())
	assert.False(t, toolchain(t, "12.0").IsLegacy())
	assert.False(t, toolchain(t, "14.0").IsLegacy())
	assert.False(t, domain.ToolchainCapability{}.IsLegacy())
}

func TestToolchainCapability_NewerThan(t *testing.T) {
	v4, v12, v14 := toolchain(t, "4.0"), toolchain(t, "12.0"), toolchain(t, "14.0")

	// Numeric, not lexical, ordering.
	assert.True(t, v12.NewerThan(v4))
	assert.True(t, v14.NewerThan(v12))
	assert.False(t, v4.NewerThan(v12))
	assert.False(t, v12.NewerThan(v12))
	assert.True(t, v4.NewerThan(domain.ToolchainCapability{}))
}

func TestNewToolchainCapability_Invalid(t *testing.T) {
	_, err := domain.NewToolchainCapability("current", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToolchainVersion)
}
