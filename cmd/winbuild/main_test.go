package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         []string
		expectedExit int
	}{
		{
			name:         "Version",
			args:         []string{"winbuild", "version"},
			expectedExit: 0,
		},
		{
			name:         "Help",
			args:         []string{"winbuild", "build", "--help"},
			expectedExit: 0,
		},
		{
			name:         "Conflicting options",
			args:         []string{"winbuild", "build", "--debug", "--release"},
			expectedExit: 1,
		},
		{
			name:         "Not a project",
			args:         []string{"winbuild", "build"},
			expectedExit: 1,
		},
		{
			name: "Invalid settings file",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "CordovaApp.shproj"), nil, 0o600))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "winbuild.yaml"), []byte("archs: [x86"), 0o600))
			},
			args:         []string{"winbuild", "build"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, tmpDir)
			}

			t.Chdir(tmpDir)
			os.Args = tt.args

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
