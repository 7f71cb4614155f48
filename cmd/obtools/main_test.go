package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const project = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
</Project>
`

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
			name: "status of project in working directory",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "App.csproj"), []byte(project), 0o600))
			},
			args:         []string{"obtools", "status"},
			expectedExit: 0,
		},
		{
			name:         "no project",
			setup:        func(*testing.T, string) {},
			args:         []string{"obtools", "status"},
			expectedExit: 1,
		},
		{
			name:         "version",
			setup:        func(*testing.T, string) {},
			args:         []string{"obtools", "--json", "version"},
			expectedExit: 0,
		},
		{
			name:         "unknown command",
			setup:        func(*testing.T, string) {},
			args:         []string{"obtools", "obfuscate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestRun_Disable(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "App.csproj")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o600))
	t.Chdir(tmpDir)

	os.Args = []string{"obtools", "disable", "-p", "App.csproj"}
	assert.Equal(t, 0, run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, project, string(data))
}
