package camelot

import (
	"fmt"
	"strings"

	"github.com/nodewee/go-camelot/pkg/constants"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Feature names reported by ModeNotSupportedError
const (
	FeatureBackgroundLines  = "processing background lines"
	FeatureColumnSeparators = "column separators"
)

// ModeNotSupportedError is returned when an option is set that the
// job's parsing mode cannot use. It is raised while configuring, before
// the engine runs.
type ModeNotSupportedError struct {
	Feature    string
	Mode       types.Mode
	ValidModes []types.Mode
}

func (e *ModeNotSupportedError) Error() string {
	modes := make([]string, len(e.ValidModes))
	for i, mode := range e.ValidModes {
		modes[i] = string(mode)
	}

	suffix := " mode"
	if len(modes) > 1 {
		suffix = " modes"
	}

	return fmt.Sprintf("processing mode %q does not support %q, it can be used with %q",
		e.Mode, e.Feature, strings.Join(modes, " | ")+suffix)
}

// ErrorType implements utils.TypedError
func (e *ModeNotSupportedError) ErrorType() utils.ErrorType {
	return utils.ErrorTypeUnsupported
}

// PdfEncryptedError is returned when the engine could not decrypt the source PDF
type PdfEncryptedError struct {
	Path string
}

func (e *PdfEncryptedError) Error() string {
	return fmt.Sprintf("the PDF %q is encrypted and cannot be read without a password, supply one with Options.Password", e.Path)
}

// ErrorType implements utils.TypedError
func (e *PdfEncryptedError) ErrorType() utils.ErrorType {
	return utils.ErrorTypeEncrypted
}

// EngineExecutionFailedError is returned for any other non-zero engine exit.
// Command is the full command line so the failure can be reproduced by hand.
type EngineExecutionFailedError struct {
	Command  string
	Output   string
	ExitCode int
}

func (e *EngineExecutionFailedError) Error() string {
	return fmt.Sprintf("unexpected camelot error (exit status %d)\nCommand: %s\nOutput:\n-----------\n%s",
		e.ExitCode, e.Command, e.Output)
}

// ErrorType implements utils.TypedError
func (e *EngineExecutionFailedError) ErrorType() utils.ErrorType {
	return utils.ErrorTypeExecution
}

// classifyFailure maps a failed run's stderr to a typed error
func classifyFailure(source, command string, result *types.ExecResult) error {
	stderr := string(result.Stderr)

	if strings.Contains(strings.ToLower(stderr), constants.EncryptedMarker) {
		return &PdfEncryptedError{Path: source}
	}

	return &EngineExecutionFailedError{
		Command:  command,
		Output:   stderr,
		ExitCode: result.ExitCode,
	}
}
