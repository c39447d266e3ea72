package utils

import (
	"fmt"
	"os"
	"sync"

	"github.com/nodewee/go-camelot/pkg/interfaces"
	"github.com/nodewee/go-camelot/pkg/logger"
)

// SimpleTempManager tracks the scratch directories of one engine run
// and removes them on Cleanup.
type SimpleTempManager struct {
	baseDir  string
	tempDirs []string
	mu       sync.Mutex
	logger   *logger.Logger
}

// Ensure SimpleTempManager implements TempFileManager interface
var _ interfaces.TempFileManager = (*SimpleTempManager)(nil)

// NewSimpleTempManager creates a manager rooted at baseDir (os.TempDir when empty)
func NewSimpleTempManager(baseDir string, log *logger.Logger) *SimpleTempManager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if log == nil {
		log = logger.Discard()
	}

	return &SimpleTempManager{
		baseDir: NormalizePath(baseDir),
		logger:  log,
	}
}

// GetBasePath returns the base path for temp directories
func (tm *SimpleTempManager) GetBasePath() string {
	return tm.baseDir
}

// CreateTempDir creates a temporary directory
func (tm *SimpleTempManager) CreateTempDir(prefix string) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if prefix == "" {
		prefix = "temp"
	}

	tempDir, err := DefaultPathUtils.CreateTempDir(tm.baseDir, prefix)
	if err != nil {
		return "", err
	}

	tm.tempDirs = append(tm.tempDirs, tempDir)
	tm.logger.Debug("Created temp directory: %s", tempDir)
	return tempDir, nil
}

// WithCleanup executes a function with automatic cleanup
func (tm *SimpleTempManager) WithCleanup(fn func() error) error {
	defer func() {
		if err := tm.Cleanup(); err != nil {
			tm.logger.Error("Temporary directory cleanup failed: %v", err)
		}
	}()
	return fn()
}

// Cleanup removes every directory created so far
func (tm *SimpleTempManager) Cleanup() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	var errs []error

	for _, dir := range tm.tempDirs {
		if err := os.RemoveAll(dir); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove temp dir %s: %w", dir, err))
			tm.logger.Warn("Failed to remove temporary directory: %s, error: %v", dir, err)
		} else {
			tm.logger.Debug("Removed temporary directory: %s", dir)
		}
	}

	tm.tempDirs = tm.tempDirs[:0]

	if len(errs) > 0 {
		return fmt.Errorf("cleanup failed with %d errors: %v", len(errs), errs)
	}

	return nil
}
