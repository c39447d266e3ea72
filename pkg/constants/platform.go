package constants

import (
	"runtime"
)

// PlatformConfig holds platform-specific engine lookup settings
type PlatformConfig struct {
	CamelotPaths []string
}

// GetPlatformConfig returns platform-specific configuration
func GetPlatformConfig() *PlatformConfig {
	switch runtime.GOOS {
	case "windows":
		return &PlatformConfig{
			CamelotPaths: []string{
				"camelot.exe",
				"C:\\Python312\\Scripts\\camelot.exe",
				"C:\\Python311\\Scripts\\camelot.exe",
			},
		}
	case "darwin":
		return &PlatformConfig{
			CamelotPaths: []string{
				"camelot",
				"/usr/local/bin/camelot",
				"/opt/homebrew/bin/camelot",
			},
		}
	default: // Linux and other Unix-like systems
		return &PlatformConfig{
			CamelotPaths: []string{
				"camelot",
				"/usr/bin/camelot",
				"/usr/local/bin/camelot",
			},
		}
	}
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}
