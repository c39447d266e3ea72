package constants

import "time"

// Application constants
const (
	AppName = "go-camelot"
	// Version is injected at build time via ldflags in main.go
)

// File system constants
const (
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Temp directory prefix for extract runs
	TempDirPrefix = "go-camelot"

	// Output stem used inside the temp directory by extract runs
	ExtractOutputStem = "extract"
)

// Engine invocation defaults
const (
	DefaultEngineBinary = "camelot"
	DefaultPlotKind     = "text"
	DefaultTimeout      = 30 * time.Minute

	// Substring the engine prints when a PDF needs a password
	EncryptedMarker = "file has not been decrypted"
)

// Engine command line vocabulary
const (
	FlagFormat            = "--format"
	FlagOutput            = "--output"
	FlagPages             = "--pages"
	FlagPassword          = "--password"
	FlagSize              = "-flag"
	FlagSplit             = "-split"
	FlagStrip             = "-strip"
	FlagShift             = "-shift"
	FlagCopy              = "-copy"
	FlagLineScale         = "-scale"
	FlagEdgeTolerance     = "-e"
	FlagRowTolerance      = "-r"
	FlagProcessBackground = "--process_background"
	FlagPlot              = "-plot"
	FlagTableAreas        = "-T"
	FlagTableRegions      = "-R"
	FlagColumns           = "-C"
)

// Plot kinds understood by the engine
var PlotKinds = []string{"text", "grid", "contour", "joint", "line", "textedge"}

// Directions accepted by the shift and copy options
var (
	ShiftDirections = []string{"l", "r", "t", "b"}
	CopyDirections  = []string{"h", "v"}
)
