package interfaces

import (
	"context"

	"github.com/nodewee/go-camelot/pkg/types"
)

// CommandExecutor spawns an external process and waits for it to exit.
//
// A non-zero exit status is reported through ExecResult.ExitCode with a nil
// error. The error is reserved for failures to start or wait on the process
// (missing binary, cancelled context).
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args []string) (*types.ExecResult, error)
}

// FileSystem lists directories and reads the files the engine produced
type FileSystem interface {
	// ReadDir returns the entry names of dir in the order the OS reports them
	ReadDir(dir string) ([]string, error)

	// ReadFile returns the full content of a file
	ReadFile(path string) ([]byte, error)
}
