package types

import "strings"

// Mode represents the table parsing strategy used by the engine
type Mode string

const (
	ModeLattice Mode = "lattice" // Tables with ruling lines between cells
	ModeStream  Mode = "stream"  // Tables laid out with whitespace only
)

// Modes lists every supported parsing mode
var Modes = []Mode{ModeLattice, ModeStream}

// IsValid reports whether the mode is one the engine understands
func (m Mode) IsValid() bool {
	return m == ModeLattice || m == ModeStream
}

// Format represents the export format of the extracted tables
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatHTML   Format = "html"
	FormatSQLite Format = "sqlite"
	FormatExcel  Format = "excel"
)

// Formats lists every supported export format
var Formats = []Format{FormatCSV, FormatJSON, FormatHTML, FormatSQLite, FormatExcel}

// IsValid reports whether the format is one the engine can export
func (f Format) IsValid() bool {
	for _, valid := range Formats {
		if f == valid {
			return true
		}
	}
	return false
}

// Extension returns the file extension the engine writes for this format
func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return "xlsx"
	case FormatSQLite:
		return "db"
	default:
		return string(f)
	}
}

// SingleFile reports whether the engine writes all tables into one file
// instead of one file per table
func (f Format) SingleFile() bool {
	return f == FormatExcel || f == FormatSQLite
}

// ParseFormat converts a user supplied name (or extension) into a Format
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(value, ".")) {
	case "csv":
		return FormatCSV, true
	case "json":
		return FormatJSON, true
	case "html", "htm":
		return FormatHTML, true
	case "sqlite", "db":
		return FormatSQLite, true
	case "excel", "xlsx":
		return FormatExcel, true
	default:
		return "", false
	}
}

// Artifact is one file produced by a single engine invocation
type Artifact struct {
	Name    string `json:"name"`            // File name inside the output directory
	Page    string `json:"page,omitempty"`  // Page token assigned by the engine, e.g. "page-1"
	Index   string `json:"index,omitempty"` // Table index on that page
	Content []byte `json:"-"`
}

// String returns the artifact content as text
func (a Artifact) String() string {
	return string(a.Content)
}

// ExecResult holds the outcome of one external process run
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status zero
func (r *ExecResult) Success() bool {
	return r.ExitCode == 0
}
