package config

import (
	"fmt"
	"strings"

	"github.com/nodewee/go-camelot/pkg/utils"
)

// ConfigValidator checks a Config before it is used
type ConfigValidator struct{}

// NewConfigValidator creates a config validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate reports every problem found in c as one validation error
func (v *ConfigValidator) Validate(c *Config) error {
	var errors []string

	if strings.TrimSpace(c.EngineBinary()) == "" {
		errors = append(errors, "camelot path must not be empty")
	}

	if c.TimeoutMinutes < 1 {
		errors = append(errors, "timeout must be at least 1 minute")
	}

	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return utils.NewValidationError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errors, "; ")))
	}

	return nil
}

func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s", level)
}
