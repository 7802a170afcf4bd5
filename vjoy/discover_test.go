package vjoy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchLibrary(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, libraryFileName())
	require.NoError(t, os.WriteFile(p, []byte{0}, 0o644))
	return p
}

func TestLocateLibraryPrefersFirstDir(t *testing.T) {
	workDir := t.TempDir()
	installDir := t.TempDir()
	wdCopy := touchLibrary(t, workDir)
	touchLibrary(t, installDir)

	got, err := locateLibrary(workDir, installDir)
	require.NoError(t, err)
	assert.Equal(t, wdCopy, got)
}

func TestLocateLibraryFallsBack(t *testing.T) {
	workDir := t.TempDir()
	installDir := t.TempDir()
	installCopy := touchLibrary(t, installDir)

	got, err := locateLibrary(workDir, installDir)
	require.NoError(t, err)
	assert.Equal(t, installCopy, got)
}

func TestLocateLibraryMissingEverywhere(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	_, err := locateLibrary(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLibraryNotFound))
	assert.Contains(t, err.Error(), libraryFileName())
	assert.Contains(t, err.Error(), a)
}

func TestLocateLibraryIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, libraryFileName()), 0o755))

	_, err := locateLibrary(dir)
	assert.True(t, errors.Is(err, ErrLibraryNotFound))
}

func TestOpenMissingLibraryFailsDeterministically(t *testing.T) {
	// OpenPath on a nonexistent file must error out, not hang or return a
	// half-initialized Library.
	lib, err := OpenPath(filepath.Join(t.TempDir(), libraryFileName()))
	require.Error(t, err)
	assert.Nil(t, lib)
}
