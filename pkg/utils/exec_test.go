package utils

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
}

func TestOSExecutorCapturesStreams(t *testing.T) {
	skipOnWindows(t)

	result, err := NewOSExecutor().Execute(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Success())
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
}

func TestOSExecutorReportsExitCode(t *testing.T) {
	skipOnWindows(t)

	result, err := NewOSExecutor().Execute(context.Background(), "sh", []string{"-c", "echo bad >&2; exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.Success())
	assert.Equal(t, "bad\n", string(result.Stderr))
}

func TestOSExecutorMissingBinary(t *testing.T) {
	_, err := NewOSExecutor().Execute(context.Background(), "go-camelot-definitely-missing", nil)
	require.Error(t, err)
	assert.Equal(t, ErrorTypeNotFound, GetErrorType(err))
}

func TestOSExecutorCancelled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOSExecutor().Execute(ctx, "sh", []string{"-c", "sleep 5"})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeTimeout, GetErrorType(err))
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	fs := OSFileSystem{}
	names, err := fs.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, names)

	content, err := fs.ReadFile(filepath.Join(dir, "b.csv"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(content))
}
