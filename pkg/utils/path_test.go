package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOutputPath(t *testing.T) {
	tests := []struct {
		path     string
		wantDir  string
		wantStem string
	}{
		{filepath.Join("tmp", "out", "report.csv"), filepath.Join("tmp", "out"), "report"},
		{filepath.Join("tmp", "extract.txt"), "tmp", "extract"},
		{"tables", ".", "tables"},
		{filepath.Join("a", "archive.tar.gz"), "a", "archive.tar"},
	}

	for _, tt := range tests {
		dir, stem := SplitOutputPath(tt.path)
		assert.Equal(t, tt.wantDir, dir, tt.path)
		assert.Equal(t, tt.wantStem, stem, tt.path)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("GO_CAMELOT_TEST_DIR", "/data/pdfs")
	got, err := ExpandPath("$GO_CAMELOT_TEST_DIR/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/data/pdfs/a.pdf"), got)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err = ExpandPath("~/x.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.pdf"), got)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
	assert.Error(t, EnsureDir(""))
}
