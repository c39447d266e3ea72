package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/nodewee/go-camelot/pkg/interfaces"
	"github.com/nodewee/go-camelot/pkg/types"
)

// OSExecutor runs commands with os/exec, capturing stdout and stderr separately
type OSExecutor struct {
	// Dir is the working directory of the child process, inherited when empty
	Dir string
	// Env is appended to the current environment
	Env []string
}

var _ interfaces.CommandExecutor = (*OSExecutor)(nil)

// NewOSExecutor creates an executor backed by os/exec
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{}
}

// Execute runs name with args and waits for it to exit
func (e *OSExecutor) Execute(ctx context.Context, name string, args []string) (*types.ExecResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &types.ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err == nil {
		return result, nil
	}

	// A cancelled context kills the process; report that rather than the exit status
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, WrapError(ctxErr, ErrorTypeTimeout, fmt.Sprintf("%s was interrupted", name))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return nil, WrapError(err, "", fmt.Sprintf("failed to start %s", name))
}

// OSFileSystem implements FileSystem on the local disk
type OSFileSystem struct{}

var _ interfaces.FileSystem = OSFileSystem{}

// ReadDir returns the regular file names of dir in lexical order (os.ReadDir sorts by name)
func (OSFileSystem) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadFile returns the content of path
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
