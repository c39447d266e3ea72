package jobfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/go-camelot/pkg/camelot"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

func TestParseSingleJob(t *testing.T) {
	data := []byte(`
source: foo.pdf
format: html
pages: 1,3-end
password: secret
process_background: true
areas:
  - "10,20,30,40"
  - [50, 60, 70, 80]
regions: ["0,800,600,0"]
flag_size: true
strip: " ."
edge_tol: 0
line_scale: 40
shift: [r, b]
copy: [h]
`)

	jobs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	opts, err := jobs[0].Options()
	require.NoError(t, err)

	want := []string{
		"--format", "html",
		"--pages", "1,3-end",
		"--password", "secret",
		"-flag",
		"-strip", " .",
		"lattice",
		"-shift", "r", "-shift", "b",
		"-copy", "h",
		"-scale", "40",
		"-e", "0",
		"--process_background",
		"-T", "10,20,30,40", "-T", "50,60,70,80",
		"-R", "0,800,600,0",
		"foo.pdf",
	}
	if diff := cmp.Diff(want, camelot.BuildArgs(opts, "")); diff != "" {
		t.Errorf("job args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJobList(t *testing.T) {
	data := []byte(`
jobs:
  - source: a.pdf
    mode: Stream
    columns: [72, 95.5]
    split: true
  - source: b.pdf
    output: out/b.json
    format: json
`)

	jobs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "out/b.json", jobs[1].Output)

	opts, err := jobs[0].Options()
	require.NoError(t, err)
	assert.Equal(t, types.ModeStream, opts.GetMode())
	assert.Equal(t, []string{"--format", "csv", "-split", "stream", "-C", "72,95.5", "a.pdf"}, camelot.BuildArgs(opts, ""))

	opts, err = jobs[1].Options()
	require.NoError(t, err)
	assert.Equal(t, types.ModeLattice, opts.GetMode())
	assert.Equal(t, types.FormatJSON, opts.GetFormat())
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "source: a.pdf\ncolumn: [1]\n"},
		{name: "short area", data: "source: a.pdf\nareas: [[1, 2, 3]]\n"},
		{name: "fractional area", data: "source: a.pdf\nareas: [[1, 2, 3, 4.5]]\n"},
		{name: "bad area string", data: "source: a.pdf\nareas: [\"1,2,x,4\"]\n"},
		{name: "empty job list", data: "jobs: []\n"},
		{name: "not yaml", data: "source: [a.pdf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
		})
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name     string
		job      Job
		wantType utils.ErrorType
	}{
		{name: "missing source", job: Job{}, wantType: utils.ErrorTypeValidation},
		{name: "unknown mode", job: Job{Source: "a.pdf", Mode: "grid"}, wantType: utils.ErrorTypeValidation},
		{name: "unknown format", job: Job{Source: "a.pdf", Format: "xml"}, wantType: utils.ErrorTypeValidation},
		{name: "background lines in stream", job: Job{Source: "a.pdf", Mode: "stream", ProcessBackground: true}, wantType: utils.ErrorTypeUnsupported},
		{name: "columns in lattice", job: Job{Source: "a.pdf", Columns: []float64{10}}, wantType: utils.ErrorTypeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.job.Options()
			require.Error(t, err)
			assert.Equal(t, tt.wantType, utils.GetErrorType(err))
		})
	}

	_, err := (&Job{Source: "a.pdf", Split: true}).Options()
	var unsupported *camelot.ModeNotSupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, camelot.FeatureColumnSeparators, unsupported.Feature)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: a.pdf\n"), 0644))

	jobs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", jobs[0].Source)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeIO, utils.GetErrorType(err))
}
