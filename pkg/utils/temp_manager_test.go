package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempManagerCreatesUnderBase(t *testing.T) {
	base := t.TempDir()
	tm := NewSimpleTempManager(base, nil)

	dir, err := tm.CreateTempDir("go-camelot")
	require.NoError(t, err)

	assert.Equal(t, base, filepath.Dir(dir))
	assert.DirExists(t, dir)
}

func TestWithCleanupRemovesOnSuccess(t *testing.T) {
	tm := NewSimpleTempManager(t.TempDir(), nil)

	var dir string
	err := tm.WithCleanup(func() error {
		var err error
		dir, err = tm.CreateTempDir("run")
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "extract-page-1-table-1.csv"), []byte("a,b"), 0644)
	})

	require.NoError(t, err)
	assert.NoDirExists(t, dir)
}

func TestWithCleanupRemovesOnError(t *testing.T) {
	tm := NewSimpleTempManager(t.TempDir(), nil)
	boom := errors.New("boom")

	var dir string
	err := tm.WithCleanup(func() error {
		dir, _ = tm.CreateTempDir("run")
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoDirExists(t, dir)
}

func TestCleanupForgetsRemovedDirs(t *testing.T) {
	tm := NewSimpleTempManager(t.TempDir(), nil)

	first, err := tm.CreateTempDir("run")
	require.NoError(t, err)
	require.NoError(t, tm.Cleanup())
	assert.NoDirExists(t, first)

	second, err := tm.CreateTempDir("run")
	require.NoError(t, err)
	require.NoError(t, tm.Cleanup())
	assert.NoDirExists(t, second)
	require.NoError(t, tm.Cleanup())
}
