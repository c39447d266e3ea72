// Package jobfile loads extraction jobs described in YAML.
//
// A file holds either a single job at the top level or a list under "jobs":
//
//	jobs:
//	  - source: reports/q3.pdf
//	    mode: stream
//	    format: json
//	    pages: 1,3-end
//	    columns: [72, 95.5, 209]
//	    split: true
//	  - source: reports/q4.pdf
//	    areas: ["10,20,300,400", [0, 800, 600, 0]]
//	    output: out/q4.csv
package jobfile

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/nodewee/go-camelot/pkg/camelot"
	"github.com/nodewee/go-camelot/pkg/geometry"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Job is one extraction job as written in a job file
type Job struct {
	Source            string     `yaml:"source"`
	Mode              string     `yaml:"mode"`
	Format            string     `yaml:"format"`
	Pages             string     `yaml:"pages"`
	Password          string     `yaml:"password"`
	ProcessBackground bool       `yaml:"process_background"`
	Areas             []AreaSpec `yaml:"areas"`
	Regions           []AreaSpec `yaml:"regions"`
	Columns           []float64  `yaml:"columns"`
	Split             bool       `yaml:"split"`
	FlagSize          bool       `yaml:"flag_size"`
	Strip             string     `yaml:"strip"`
	EdgeTol           *int       `yaml:"edge_tol"`
	RowTol            *int       `yaml:"row_tol"`
	LineScale         *int       `yaml:"line_scale"`
	Shift             []string   `yaml:"shift"`
	Copy              []string   `yaml:"copy"`

	// Output keeps the engine's files at this path. Without it the job is
	// extracted through a temporary directory.
	Output string `yaml:"output"`
}

type document struct {
	Jobs []Job `yaml:"jobs"`
}

// AreaSpec is an area written either as "x1,y1,x2,y2" or as a list of four
// integers
type AreaSpec struct {
	geometry.Area
}

// UnmarshalYAML accepts both area notations
func (a *AreaSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		area, err := geometry.ParseArea(v)
		if err != nil {
			return err
		}
		a.Area = area
		return nil
	case []interface{}:
		if len(v) != 4 {
			return fmt.Errorf("area must have 4 coordinates, got %d", len(v))
		}
		var coords [4]int
		for i, item := range v {
			n, err := toInt(item)
			if err != nil {
				return fmt.Errorf("area coordinate %d: %w", i+1, err)
			}
			coords[i] = n
		}
		a.Area = geometry.NewArea(coords[0], coords[1], coords[2], coords[3])
		return nil
	default:
		return fmt.Errorf("area must be \"x1,y1,x2,y2\" or a list of 4 integers, got %T", raw)
	}
}

func toInt(value interface{}) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%v is not an integer", value)
	}
}

// Load reads and parses the job file at path
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.NewIOError("failed to read job file", err).
			WithContext("path", path)
	}

	jobs, err := Parse(data)
	if err != nil {
		return nil, utils.WrapError(err, "", path)
	}
	return jobs, nil
}

// Parse decodes job file content. Unknown keys are rejected.
func Parse(data []byte) ([]Job, error) {
	var probe struct {
		Jobs interface{} `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "invalid job file")
	}

	if probe.Jobs == nil {
		var job Job
		if err := yaml.UnmarshalWithOptions(data, &job, yaml.Strict()); err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeValidation, "invalid job file")
		}
		return []Job{job}, nil
	}

	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "invalid job file")
	}
	if len(doc.Jobs) == 0 {
		return nil, utils.NewValidationError("job file lists no jobs", nil)
	}
	return doc.Jobs, nil
}

// Options builds extraction options from the job. Mode-gated settings go
// through the same guarded setters a caller would use, so a stream job asking
// for background lines fails here.
func (j *Job) Options() (*camelot.Options, error) {
	if strings.TrimSpace(j.Source) == "" {
		return nil, utils.NewValidationError("job has no source", nil)
	}

	mode := types.ModeLattice
	if j.Mode != "" {
		mode = types.Mode(strings.ToLower(j.Mode))
	}
	opts, err := camelot.New(j.Source, mode)
	if err != nil {
		return nil, err
	}

	if j.Format != "" {
		format, ok := types.ParseFormat(j.Format)
		if !ok {
			return nil, utils.NewValidationError(fmt.Sprintf("unknown output format %q", j.Format), nil).
				WithContext("valid_formats", types.Formats)
		}
		opts.WithFormat(format)
	}

	opts.Pages(j.Pages).
		Password(j.Password).
		FlagSize(j.FlagSize).
		Strip(j.Strip).
		ShiftText(j.Shift...).
		CopyTextSpanningCells(j.Copy...).
		InAreas(toAreas(j.Areas)).
		InRegions(toAreas(j.Regions))

	if j.EdgeTol != nil {
		opts.SetEdgeTolerance(*j.EdgeTol)
	}
	if j.RowTol != nil {
		opts.SetRowTolerance(*j.RowTol)
	}
	if j.LineScale != nil {
		opts.SetLineScale(*j.LineScale)
	}

	if j.ProcessBackground {
		if err := opts.ProcessBackgroundLines(); err != nil {
			return nil, err
		}
	}
	if len(j.Columns) > 0 || j.Split {
		if err := opts.SetColumnSeparators(j.Columns, j.Split); err != nil {
			return nil, err
		}
	}

	return opts, nil
}

func toAreas(specs []AreaSpec) *geometry.Areas {
	if len(specs) == 0 {
		return nil
	}
	areas := geometry.NewAreas()
	for _, spec := range specs {
		areas.Push(spec.Area)
	}
	return areas
}
