package camelot

import (
	"strconv"
	"strings"

	"github.com/nodewee/go-camelot/pkg/constants"
)

// BuildArgs renders the engine arguments for o. An empty outputPath omits
// the output flag. Unset options produce no arguments so the engine falls
// back to its own defaults. The source path is always the last argument.
func BuildArgs(o *Options, outputPath string) []string {
	return buildArgs(o, outputPath, "")
}

// BuildPlotArgs renders the arguments of a diagnostic plot run
func BuildPlotArgs(o *Options, kind string) []string {
	return buildArgs(o, "", kind)
}

// buildArgs keeps the engine's argument order: global options, then the
// mode sub-command and its options, then the source path.
func buildArgs(o *Options, outputPath, plotKind string) []string {
	args := []string{constants.FlagFormat, string(o.format)}

	if outputPath != "" {
		args = append(args, constants.FlagOutput, outputPath)
	}
	if o.pages != "" {
		args = append(args, constants.FlagPages, o.pages)
	}
	if o.password != "" {
		args = append(args, constants.FlagPassword, o.password)
	}
	if o.flagSize {
		args = append(args, constants.FlagSize)
	}
	if o.split && len(o.columnSeparators) > 0 {
		args = append(args, constants.FlagSplit)
	}
	if o.strip != "" {
		args = append(args, constants.FlagStrip, o.strip)
	}

	args = append(args, string(o.mode))

	for _, direction := range o.shiftText {
		args = append(args, constants.FlagShift, direction)
	}
	for _, direction := range o.copyText {
		args = append(args, constants.FlagCopy, direction)
	}
	if o.lineScale != nil {
		args = append(args, constants.FlagLineScale, strconv.Itoa(*o.lineScale))
	}
	if o.edgeTolerance != nil {
		args = append(args, constants.FlagEdgeTolerance, strconv.Itoa(*o.edgeTolerance))
	}
	if o.rowTolerance != nil {
		args = append(args, constants.FlagRowTolerance, strconv.Itoa(*o.rowTolerance))
	}
	if o.processBackground {
		args = append(args, constants.FlagProcessBackground)
	}
	if plotKind != "" {
		args = append(args, constants.FlagPlot, plotKind)
	}
	if o.areas.Len() > 0 {
		args = append(args, o.areas.Args(constants.FlagTableAreas)...)
	}
	if o.regions.Len() > 0 {
		args = append(args, o.regions.Args(constants.FlagTableRegions)...)
	}
	if len(o.columnSeparators) > 0 {
		args = append(args, constants.FlagColumns, joinCoords(o.columnSeparators))
	}

	return append(args, o.path)
}

func joinCoords(coords []float64) string {
	parts := make([]string, len(coords))
	for i, x := range coords {
		parts[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// CommandLine renders binary and args as one shell-readable line.
// Arguments containing whitespace or quotes are single-quoted.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, arg := range append([]string{binary}, args...) {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
