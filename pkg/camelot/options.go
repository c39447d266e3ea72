package camelot

import (
	"fmt"

	"github.com/nodewee/go-camelot/pkg/geometry"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Options holds every setting of one table extraction job.
//
// The parsing mode is fixed when the Options are created. Setters modify the
// Options in place and return them for chaining, except the two mode-gated
// setters which return an error instead. Options are owned by a single
// goroutine; concurrent mutation needs external locking.
type Options struct {
	mode   types.Mode
	format types.Format
	path   string

	pages    string
	password string

	processBackground bool

	areas   *geometry.Areas
	regions *geometry.Areas

	columnSeparators []float64
	split            bool

	flagSize bool
	strip    string

	edgeTolerance *int
	rowTolerance  *int
	lineScale     *int

	shiftText []string
	copyText  []string
}

// New creates Options for the source PDF at path using the given mode
func New(path string, mode types.Mode) (*Options, error) {
	if !mode.IsValid() {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown processing mode %q", mode), nil).
			WithContext("valid_modes", types.Modes)
	}

	return &Options{
		mode:   mode,
		format: types.FormatCSV,
		path:   path,
	}, nil
}

// Lattice creates Options for a PDF whose tables have ruling lines
func Lattice(path string) *Options {
	return &Options{mode: types.ModeLattice, format: types.FormatCSV, path: path}
}

// Stream creates Options for a PDF whose tables are laid out with whitespace
func Stream(path string) *Options {
	return &Options{mode: types.ModeStream, format: types.FormatCSV, path: path}
}

// Pages sets the page specification, e.g. "1,3-5,7-end". The value is passed
// to the engine unparsed; empty means all pages.
func (o *Options) Pages(pages string) *Options {
	o.pages = pages
	return o
}

// Password sets the password used to decrypt the source PDF
func (o *Options) Password(password string) *Options {
	o.password = password
	return o
}

// CSV selects comma separated output (the default)
func (o *Options) CSV() *Options { return o.WithFormat(types.FormatCSV) }

// JSON selects JSON output
func (o *Options) JSON() *Options { return o.WithFormat(types.FormatJSON) }

// HTML selects HTML output
func (o *Options) HTML() *Options { return o.WithFormat(types.FormatHTML) }

// SQLite selects SQLite database output
func (o *Options) SQLite() *Options { return o.WithFormat(types.FormatSQLite) }

// Excel selects Excel workbook output
func (o *Options) Excel() *Options { return o.WithFormat(types.FormatExcel) }

// WithFormat replaces the output format. Unknown formats are ignored and the
// current format is kept.
func (o *Options) WithFormat(format types.Format) *Options {
	if format.IsValid() {
		o.format = format
	}
	return o
}

// ProcessBackgroundLines makes the engine detect lines drawn in the page
// background. Only lattice mode supports it.
func (o *Options) ProcessBackgroundLines() error {
	if o.mode != types.ModeLattice {
		return &ModeNotSupportedError{
			Feature:    FeatureBackgroundLines,
			Mode:       o.mode,
			ValidModes: []types.Mode{types.ModeLattice},
		}
	}

	o.processBackground = true
	return nil
}

// SetColumnSeparators sets the x coordinates of column boundaries. With split,
// text spanning a separator is split between the columns. Only stream mode
// supports it.
func (o *Options) SetColumnSeparators(xCoords []float64, split bool) error {
	if o.mode != types.ModeStream {
		return &ModeNotSupportedError{
			Feature:    FeatureColumnSeparators,
			Mode:       o.mode,
			ValidModes: []types.Mode{types.ModeStream},
		}
	}

	o.columnSeparators = append([]float64(nil), xCoords...)
	o.split = split
	return nil
}

// InAreas restricts detection to the given table areas, replacing any
// earlier ones. Later changes to areas do not affect the Options.
func (o *Options) InAreas(areas *geometry.Areas) *Options {
	o.areas = snapshot(areas)
	return o
}

// InRegions limits the page regions searched for tables, replacing any
// earlier ones.
func (o *Options) InRegions(regions *geometry.Areas) *Options {
	o.regions = snapshot(regions)
	return o
}

// FlagSize marks super/subscript text in the output
func (o *Options) FlagSize(flag bool) *Options {
	o.flagSize = flag
	return o
}

// Strip removes the given characters from cell text
func (o *Options) Strip(unwantedCharacters string) *Options {
	o.strip = unwantedCharacters
	return o
}

// SetEdgeTolerance sets the tolerance used to extend text edges
func (o *Options) SetEdgeTolerance(edgeTolerance int) *Options {
	o.edgeTolerance = &edgeTolerance
	return o
}

// SetRowTolerance sets the tolerance used to merge text into rows
func (o *Options) SetRowTolerance(rowTolerance int) *Options {
	o.rowTolerance = &rowTolerance
	return o
}

// SetLineScale sets the factor used to detect short lines
func (o *Options) SetLineScale(lineScale int) *Options {
	o.lineScale = &lineScale
	return o
}

// ShiftText sets the directions text in spanning cells is moved to,
// replacing earlier ones. Order is kept.
func (o *Options) ShiftText(directions ...string) *Options {
	o.shiftText = append([]string(nil), directions...)
	return o
}

// CopyTextSpanningCells sets the directions text in spanning cells is
// copied to, replacing earlier ones. Order is kept.
func (o *Options) CopyTextSpanningCells(directions ...string) *Options {
	o.copyText = append([]string(nil), directions...)
	return o
}

// GetMode returns the parsing mode
func (o *Options) GetMode() types.Mode { return o.mode }

// GetFormat returns the output format
func (o *Options) GetFormat() types.Format { return o.format }

// GetPath returns the source PDF path
func (o *Options) GetPath() string { return o.path }

// GetPages returns the page specification exactly as it was set
func (o *Options) GetPages() string { return o.pages }

// GetPassword returns the decryption password
func (o *Options) GetPassword() string { return o.password }

// GetAreas returns the table areas, or nil
func (o *Options) GetAreas() *geometry.Areas { return o.areas }

// GetRegions returns the table regions, or nil
func (o *Options) GetRegions() *geometry.Areas { return o.regions }

// GetColumnSeparators returns a copy of the column separators
func (o *Options) GetColumnSeparators() []float64 {
	return append([]float64(nil), o.columnSeparators...)
}

func snapshot(areas *geometry.Areas) *geometry.Areas {
	if areas.Len() == 0 {
		return nil
	}
	return geometry.NewAreas(areas.All()...)
}
