package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodewee/go-camelot/pkg/constants"
)

// PathUtils provides cross-platform path utilities
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// NormalizePath normalizes a path for the current platform
func (p *PathUtils) NormalizePath(path string) string {
	cleaned := filepath.Clean(path)

	// On Windows, ensure proper drive letter formatting
	if constants.IsWindows() && len(cleaned) >= 2 && cleaned[1] == ':' {
		if cleaned[0] >= 'a' && cleaned[0] <= 'z' {
			cleaned = strings.ToUpper(string(cleaned[0])) + cleaned[1:]
		}
	}

	return cleaned
}

// EnsureDir creates a directory if it doesn't exist
func (p *PathUtils) EnsureDir(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	return os.MkdirAll(p.NormalizePath(dirPath), constants.DefaultDirPermission)
}

// CreateTempDir creates a uniquely named directory under baseDir
// (os.TempDir when baseDir is empty)
func (p *PathUtils) CreateTempDir(baseDir, prefix string) (string, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if err := p.EnsureDir(baseDir); err != nil {
		return "", fmt.Errorf("failed to ensure temp base directory: %w", err)
	}

	fullPrefix := prefix
	if !strings.HasSuffix(fullPrefix, "-") {
		fullPrefix += "-"
	}

	dir, err := os.MkdirTemp(baseDir, fullPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	return p.NormalizePath(dir), nil
}

// IsExecutable checks if a file is executable on the current platform
func (p *PathUtils) IsExecutable(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return false
	}

	if constants.IsWindows() {
		ext := strings.ToLower(filepath.Ext(filePath))
		return ext == ".exe" || ext == ".bat" || ext == ".cmd"
	}
	return info.Mode()&0111 != 0
}

// GetExecutableName returns the platform-appropriate executable name
func (p *PathUtils) GetExecutableName(baseName string) string {
	if constants.IsWindows() && !strings.HasSuffix(strings.ToLower(baseName), ".exe") {
		return baseName + ".exe"
	}
	return baseName
}

// ExpandPath expands environment variables and a leading ~
func (p *PathUtils) ExpandPath(path string) (string, error) {
	expanded := os.ExpandEnv(path)

	if strings.HasPrefix(expanded, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}

		if expanded == "~" {
			expanded = homeDir
		} else if strings.HasPrefix(expanded, "~/") {
			expanded = filepath.Join(homeDir, expanded[2:])
		}
	}

	return p.NormalizePath(expanded), nil
}

// SplitOutputPath splits an output path into its directory and file stem,
// so "/tmp/out/report.csv" yields "/tmp/out" and "report".
func (p *PathUtils) SplitOutputPath(path string) (dir, stem string) {
	dir = filepath.Dir(path)
	base := filepath.Base(path)
	stem = strings.TrimSuffix(base, filepath.Ext(base))
	return dir, stem
}

// Global instance for easy access
var DefaultPathUtils = NewPathUtils()

// Convenience functions that use the default instance
func NormalizePath(path string) string {
	return DefaultPathUtils.NormalizePath(path)
}

func EnsureDir(dirPath string) error {
	return DefaultPathUtils.EnsureDir(dirPath)
}

func ExpandPath(path string) (string, error) {
	return DefaultPathUtils.ExpandPath(path)
}

func SplitOutputPath(path string) (string, string) {
	return DefaultPathUtils.SplitOutputPath(path)
}
