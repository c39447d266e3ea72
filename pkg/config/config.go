package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nodewee/go-camelot/pkg/camelot"
	"github.com/nodewee/go-camelot/pkg/constants"
	"github.com/nodewee/go-camelot/pkg/interfaces"
	"github.com/nodewee/go-camelot/pkg/logger"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Default values
const (
	DefaultLogLevel       = "info"
	DefaultTimeoutMinutes = 30
	DefaultEnableVerbose  = false
)

// Config holds application configuration
type Config struct {
	// Persisted paths
	CamelotPath string `json:"camelot_path"`
	TempDir     string `json:"temp_dir"`

	// Runtime settings (not persisted to file)
	LogLevel       string `json:"-"`
	EnableVerbose  bool   `json:"-"`
	TimeoutMinutes int    `json:"-"`
}

// DefaultConfig returns the configuration by loading from file or creating default
func DefaultConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config file, using basic defaults: %v\n", err)
		return newDefaults()
	}
	return config
}

func newDefaults() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		EnableVerbose:  DefaultEnableVerbose,
		TimeoutMinutes: DefaultTimeoutMinutes,
	}
}

// LoadConfigWithEnvOverrides loads config from file and applies environment variable overrides
func LoadConfigWithEnvOverrides() *Config {
	config := DefaultConfig()
	config.ApplyEnv(os.Getenv)
	return config
}

// ApplyEnv overrides settings from environment variables read through getenv
func (c *Config) ApplyEnv(getenv func(string) string) {
	if value := getenv("CAMELOT_PATH"); value != "" {
		c.CamelotPath = value
	}
	if value := getenv("GO_CAMELOT_TEMP_DIR"); value != "" {
		c.TempDir = value
	}
	if value := getenv("GO_CAMELOT_LOG_LEVEL"); value != "" {
		c.LogLevel = value
	}
	if value := getenv("GO_CAMELOT_VERBOSE"); value != "" {
		c.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}
	if value := getenv("GO_CAMELOT_TIMEOUT_MINUTES"); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			c.TimeoutMinutes = intVal
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return NewConfigValidator().Validate(c)
}

// EngineBinary returns the configured camelot executable, falling back to
// the bare command name
func (c *Config) EngineBinary() string {
	if c.CamelotPath != "" {
		return c.CamelotPath
	}
	return constants.DefaultEngineBinary
}

// Timeout returns the per-invocation time limit
func (c *Config) Timeout() time.Duration {
	if c.TimeoutMinutes < 1 {
		return constants.DefaultTimeout
	}
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

// CreateTempFileManager creates a temporary file manager rooted at TempDir
func (c *Config) CreateTempFileManager(log *logger.Logger) interfaces.TempFileManager {
	return utils.NewSimpleTempManager(c.TempDir, log)
}

// NewRunner builds a camelot runner wired to the configured binary, temp
// directory and logger
func (c *Config) NewRunner(log *logger.Logger, opts ...camelot.RunnerOption) *camelot.Runner {
	base := []camelot.RunnerOption{
		camelot.WithLogger(log),
		camelot.WithTempManagerFactory(func() interfaces.TempFileManager {
			return c.CreateTempFileManager(log)
		}),
	}
	return camelot.NewRunner(c.EngineBinary(), append(base, opts...)...)
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{CamelotPath: %s, LogLevel: %s, Verbose: %v, Timeout: %dm}",
		c.CamelotPath, c.LogLevel, c.EnableVerbose, c.TimeoutMinutes)
}
