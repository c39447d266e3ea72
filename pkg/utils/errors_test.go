package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewIOError("failed to read artifact", errors.New("disk gone"))
	assert.Equal(t, "io: failed to read artifact (caused by: disk gone)", err.Error())
	assert.Equal(t, "validation: bad value", NewValidationError("bad value", nil).Error())
}

func TestAppErrorIsMatchesType(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewNotFoundError("missing", nil))
	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeNotFound}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeIO}))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorTypeIO, "ignored"))

	wrapped := WrapError(NewIOError("inner", nil), "", "outer")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeIO, wrapped.Type)
	assert.Equal(t, "outer: inner", wrapped.Message)

	explicit := WrapError(errors.New("boom"), ErrorTypeExecution, "run failed")
	assert.Equal(t, ErrorTypeExecution, explicit.Type)

	typed := WrapError(encryptedErr{}, "", "job 1")
	assert.Equal(t, ErrorTypeEncrypted, typed.Type)
	assert.ErrorIs(t, typed, encryptedErr{})
}

type encryptedErr struct{}

func (encryptedErr) Error() string { return "locked" }
func (encryptedErr) ErrorType() ErrorType { return ErrorTypeEncrypted }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"deadline", context.DeadlineExceeded, ErrorTypeTimeout},
		{"canceled", fmt.Errorf("run: %w", context.Canceled), ErrorTypeTimeout},
		{"not exist", fmt.Errorf("open: %w", os.ErrNotExist), ErrorTypeNotFound},
		{"permission", os.ErrPermission, ErrorTypePermission},
		{"invalid argument", errors.New("invalid argument"), ErrorTypeSystem},
		{"bad descriptor", errors.New("write /dev/stdout: bad file descriptor"), ErrorTypeSystem},
		{"typed invalid", NewValidationError("invalid pages", nil), ErrorTypeValidation},
		{"other", errors.New("something odd"), ErrorTypeSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorType(tt.err))
		})
	}
}

func TestWithContext(t *testing.T) {
	err := NewSystemError("x", nil).WithContext("path", "/tmp/a")
	assert.Equal(t, "/tmp/a", err.Context["path"])
}
