package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodewee/go-camelot/pkg/constants"
	"github.com/nodewee/go-camelot/pkg/geometry"
	"github.com/nodewee/go-camelot/pkg/jobfile"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// jobFlags holds the extraction options shared by extract, save and plot
type jobFlags struct {
	mode     string
	format   string
	pages    string
	password string

	areas   []string
	regions []string

	columns []float64
	split   bool

	flagSize          bool
	strip             string
	edgeTol           int
	rowTol            int
	lineScale         int
	shift             []string
	copyText          []string
	processBackground bool
}

func modeNames() string {
	names := make([]string, len(types.Modes))
	for i, m := range types.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func formatNames() string {
	names := make([]string, len(types.Formats))
	for i, f := range types.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// register adds the option flags to cmd
func (f *jobFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(&f.mode, "mode", "m", string(types.ModeLattice),
		"Parsing mode ("+modeNames()+")")
	flags.StringVarP(&f.format, "format", "f", string(types.FormatCSV),
		"Output format ("+formatNames()+")")
	flags.StringVarP(&f.pages, "pages", "p", "",
		`Pages to read, e.g. "1,3-5,7-end" (default: all pages)`)
	flags.StringVar(&f.password, "password", "",
		"Password of an encrypted PDF")

	flags.StringArrayVarP(&f.areas, "area", "T", nil,
		"Table area as x1,y1,x2,y2 in PDF points, top-left then bottom-right (repeatable)")
	flags.StringArrayVarP(&f.regions, "region", "R", nil,
		"Page region to search for tables as x1,y1,x2,y2 (repeatable)")

	flags.Float64SliceVarP(&f.columns, "columns", "C", nil,
		"Column separator x coordinates, comma separated (stream mode only)")
	flags.BoolVar(&f.split, "split", false,
		"Split text spanning column separators (stream mode only)")

	flags.BoolVar(&f.flagSize, "flag-size", false,
		"Mark super/subscript text with <s></s>")
	flags.StringVar(&f.strip, "strip", "",
		"Characters to remove from cell text")
	flags.IntVar(&f.edgeTol, "edge-tol", 0,
		"Tolerance used to extend text edges")
	flags.IntVar(&f.rowTol, "row-tol", 0,
		"Tolerance used to merge text into rows")
	flags.IntVar(&f.lineScale, "line-scale", 0,
		"Factor used to detect short lines (lattice)")
	flags.StringSliceVar(&f.shift, "shift", nil,
		"Directions to shift text in spanning cells ("+strings.Join(constants.ShiftDirections, ", ")+")")
	flags.StringSliceVar(&f.copyText, "copy", nil,
		"Directions to copy text in spanning cells ("+strings.Join(constants.CopyDirections, ", ")+")")
	flags.BoolVar(&f.processBackground, "process-background", false,
		"Detect lines drawn in the page background (lattice mode only)")
}

// job converts the parsed flags into a job for source. changed reports
// whether a flag was given on the command line.
func (f *jobFlags) job(source string, changed func(name string) bool) (*jobfile.Job, error) {
	areas, err := parseAreas("--area", f.areas)
	if err != nil {
		return nil, err
	}
	regions, err := parseAreas("--region", f.regions)
	if err != nil {
		return nil, err
	}

	job := &jobfile.Job{
		Source:            source,
		Mode:              f.mode,
		Format:            f.format,
		Pages:             f.pages,
		Password:          f.password,
		ProcessBackground: f.processBackground,
		Areas:             areas,
		Regions:           regions,
		Columns:           f.columns,
		Split:             f.split,
		FlagSize:          f.flagSize,
		Strip:             f.strip,
		Shift:             f.shift,
		Copy:              f.copyText,
	}

	if changed("edge-tol") {
		job.EdgeTol = intPtr(f.edgeTol)
	}
	if changed("row-tol") {
		job.RowTol = intPtr(f.rowTol)
	}
	if changed("line-scale") {
		job.LineScale = intPtr(f.lineScale)
	}

	return job, nil
}

func parseAreas(flag string, values []string) ([]jobfile.AreaSpec, error) {
	specs := make([]jobfile.AreaSpec, 0, len(values))
	for _, value := range values {
		area, err := geometry.ParseArea(value)
		if err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeValidation, "invalid "+flag)
		}
		specs = append(specs, jobfile.AreaSpec{Area: area})
	}
	return specs, nil
}

func intPtr(v int) *int {
	return &v
}
