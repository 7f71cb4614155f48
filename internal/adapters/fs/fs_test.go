package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/obtools/internal/adapters/fs"
	"go.trai.ch/obtools/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a"), "hello world")
	b := writeFile(t, filepath.Join(dir, "b"), "hello world")
	c := writeFile(t, filepath.Join(dir, "c"), "hello there")

	h := fs.NewHasher()
	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	assert.NotZero(t, ha)

	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	hc, err := h.ComputeFileHash(c)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)

	_, err = h.ComputeFileHash(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInstaller_Install(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "tools", domain.ConsoleExeName), "MZ v1")
	dstDir := filepath.Join(dir, "App", domain.ObfuscarDirName)
	dst := filepath.Join(dstDir, domain.ConsoleExeName)

	inst := fs.NewInstaller(fs.NewHasher())

	copied, err := inst.Install(t.Context(), src, dstDir)
	require.NoError(t, err)
	assert.True(t, copied)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "MZ v1", string(data))

	// Same content: nothing is copied and the file is untouched.
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(dst, old, old))

	copied, err = inst.Install(t.Context(), src, dstDir)
	require.NoError(t, err)
	assert.False(t, copied)
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old))

	// New content replaces the old file.
	writeFile(t, src, "MZ v2")
	copied, err = inst.Install(t.Context(), src, dstDir)
	require.NoError(t, err)
	assert.True(t, copied)
	data, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "MZ v2", string(data))

	entries, err := os.ReadDir(dstDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestInstaller_MissingSource(t *testing.T) {
	dir := t.TempDir()
	inst := fs.NewInstaller(fs.NewHasher())

	_, err := inst.Install(t.Context(), filepath.Join(dir, "nope.exe"), dir)
	require.ErrorIs(t, err, domain.ErrObfuscatorNotFound)

	_, err = inst.Install(t.Context(), dir, filepath.Join(dir, "out"))
	require.ErrorIs(t, err, domain.ErrObfuscatorNotFound)
}

func TestInstaller_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := fs.NewInstaller(fs.NewHasher()).Install(ctx, "src", t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
