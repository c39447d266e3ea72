package interfaces

// TempFileManager owns scratch directories for one engine run.
// Every directory it creates is removed by Cleanup.
type TempFileManager interface {
	// GetBasePath returns the directory new temp directories are created under
	GetBasePath() string

	// CreateTempDir creates a temporary directory
	CreateTempDir(prefix string) (string, error)

	// WithCleanup runs fn and then Cleanup, on every exit path
	WithCleanup(fn func() error) error

	// Cleanup removes every tracked resource
	Cleanup() error
}
