package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/go-camelot/pkg/camelot"
	"github.com/nodewee/go-camelot/pkg/config"
	"github.com/nodewee/go-camelot/pkg/jobfile"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// tableWriter writes two csv tables next to --output, like camelot does
type tableWriter struct {
	calls [][]string
}

func (w *tableWriter) Execute(ctx context.Context, name string, args []string) (*types.ExecResult, error) {
	w.calls = append(w.calls, args)

	for i := 0; i+1 < len(args); i++ {
		if args[i] != "--output" {
			continue
		}
		output := args[i+1]
		ext := filepath.Ext(output)
		stem := strings.TrimSuffix(output, ext)
		for n := 1; n <= 2; n++ {
			content := fmt.Sprintf("a%d,b%d\n", n, n)
			if err := os.WriteFile(fmt.Sprintf("%s-page-1-table-%d%s", stem, n, ext), []byte(content), 0644); err != nil {
				return nil, err
			}
		}
	}
	return &types.ExecResult{}, nil
}

func newTestHandler(t *testing.T, out *bytes.Buffer, engine *tableWriter) *AppHandler {
	t.Helper()
	h := NewAppHandler(out, camelot.WithExecutor(engine))
	h.config = &config.Config{
		TempDir:        t.TempDir(),
		LogLevel:       "error",
		TimeoutMinutes: 1,
	}
	return h
}

func TestProcessJobPrintsTables(t *testing.T) {
	var out bytes.Buffer
	engine := &tableWriter{}
	h := newTestHandler(t, &out, engine)

	require.NoError(t, h.ProcessJob(&jobfile.Job{Source: "report.pdf"}))

	assert.Equal(t,
		"==> extract-page-1-table-1.csv <==\na1,b1\n\n==> extract-page-1-table-2.csv <==\na2,b2\n\n",
		out.String())
	require.Len(t, engine.calls, 1)
	assert.Equal(t, "camelot", h.config.EngineBinary())
}

func TestProcessJobDecodes(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler(t, &out, &tableWriter{})

	decode = true
	t.Cleanup(func() { decode = false })

	require.NoError(t, h.ProcessJob(&jobfile.Job{Source: "report.pdf", Format: "csv"}))
	assert.Contains(t, out.String(), `"name": "extract-page-1-table-2.csv"`)
	assert.Contains(t, out.String(), `"a2"`)
}

func TestProcessJobSaves(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler(t, &out, &tableWriter{})
	output := filepath.Join(t.TempDir(), "nested", "report.csv")

	require.NoError(t, h.ProcessJob(&jobfile.Job{Source: "report.pdf", Output: output}))

	assert.Contains(t, out.String(), "✅ Saved 2 table file(s) for report.pdf")
	assert.FileExists(t, filepath.Join(filepath.Dir(output), "report-page-1-table-2.csv"))
}

func TestProcessJobFile(t *testing.T) {
	var out bytes.Buffer
	engine := &tableWriter{}
	h := newTestHandler(t, &out, engine)

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := "jobs:\n  - source: a.pdf\n  - source: b.pdf\n    mode: stream\n    process_background: true\n  - source: c.pdf\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	err := h.ProcessJobFile(path)
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeUnsupported, utils.GetErrorType(err))
	assert.Contains(t, err.Error(), "job 2 (b.pdf)")
	assert.Len(t, engine.calls, 1)
}

func TestPlot(t *testing.T) {
	var out bytes.Buffer
	engine := &tableWriter{}
	h := newTestHandler(t, &out, engine)

	require.NoError(t, h.Plot(&jobfile.Job{Source: "a.pdf", Mode: "stream"}, "contour"))
	require.Len(t, engine.calls, 1)
	assert.Equal(t, []string{"--format", "csv", "stream", "-plot", "contour", "a.pdf"}, engine.calls[0])
}

func TestInvalidConfig(t *testing.T) {
	h := NewAppHandler(&bytes.Buffer{})
	h.config = &config.Config{LogLevel: "loud", TimeoutMinutes: 1}

	_, err := h.RunJob(&jobfile.Job{Source: "a.pdf"})
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
}

func TestJobFlags(t *testing.T) {
	flags := jobFlags{
		mode:      "stream",
		format:    "json",
		pages:     "1-2",
		areas:     []string{"1,2,3,4"},
		columns:   []float64{10.5, 20},
		split:     true,
		shift:     []string{"l"},
		edgeTol:   0,
		rowTol:    5,
		lineScale: 40,
	}
	changed := func(name string) bool { return name == "edge-tol" || name == "row-tol" }

	job, err := flags.job("a.pdf", changed)
	require.NoError(t, err)
	assert.Nil(t, job.LineScale)

	opts, err := job.Options()
	require.NoError(t, err)

	want := []string{
		"--format", "json", "--pages", "1-2", "-split", "stream",
		"-shift", "l", "-e", "0", "-r", "5", "-T", "1,2,3,4", "-C", "10.5,20", "a.pdf",
	}
	if diff := cmp.Diff(want, camelot.BuildArgs(opts, "")); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}

	flags.regions = []string{"1,2,3"}
	_, err = flags.job("a.pdf", changed)
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
	assert.Contains(t, err.Error(), "--region")
}

func TestFormatError(t *testing.T) {
	err := utils.WrapError(errors.New("exit status 2"), utils.ErrorTypeExecution, "camelot failed")
	assert.Equal(t, "Error (execution): camelot failed: exit status 2", formatError(err))

	encrypted := &camelot.PdfEncryptedError{Path: "a.pdf"}
	assert.Equal(t, "Error (encrypted): "+encrypted.Error(), formatError(encrypted))
}

func TestSpanningCellFlagUsage(t *testing.T) {
	assert.Contains(t, rootCmd.Flags().Lookup("shift").Usage, "(l, r, t, b)")
	assert.Contains(t, rootCmd.Flags().Lookup("copy").Usage, "(h, v)")
}
