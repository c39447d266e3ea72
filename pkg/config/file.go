package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/nodewee/go-camelot/pkg/constants"
	"github.com/nodewee/go-camelot/pkg/utils"
)

const (
	ConfigFileName = "config.json"
	AppDirName     = ".go-camelot"

	// ConfigDirEnv points the config directory somewhere other than the home directory
	ConfigDirEnv = "GO_CAMELOT_CONFIG_DIR"
)

// ConfigFile represents the JSON configuration file structure
type ConfigFile struct {
	CamelotPath string `json:"camelot_path"`
	TempDir     string `json:"temp_dir"`
}

// configKeys maps each settable key to its field in ConfigFile
var configKeys = map[string]func(*ConfigFile) *string{
	"camelot_path": func(cf *ConfigFile) *string { return &cf.CamelotPath },
	"temp_dir":     func(cf *ConfigFile) *string { return &cf.TempDir },
}

// GetConfigDir returns the user configuration directory (~/.go-camelot)
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}

	return filepath.Join(homeDir, AppDirName), nil
}

// GetConfigFilePath returns the full path to the configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from file or creates default if not exists
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to get config file path")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfigFile(configPath)
	}

	return loadConfigFromFile(configPath)
}

// createDefaultConfigFile creates a default configuration file with the
// auto-detected camelot path
func createDefaultConfigFile(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), constants.DefaultDirPermission); err != nil {
		return nil, utils.NewIOError("failed to create config directory", err)
	}

	configFile := &ConfigFile{CamelotPath: DetectCamelotPath()}

	if err := saveConfigFile(configPath, configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to save default config file")
	}

	fmt.Fprintf(os.Stderr, "✅ Created default configuration file: %s\n", configPath)
	if configFile.CamelotPath != "" {
		fmt.Fprintf(os.Stderr, "🔍 Auto-detected camelot: %s\n", configFile.CamelotPath)
	}

	return configFileToConfig(configFile), nil
}

func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, utils.NewIOError("failed to read config file", err)
	}

	var configFile ConfigFile
	if err := json.Unmarshal(data, &configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "failed to parse config file").
			WithContext("path", configPath)
	}

	for key, field := range configKeys {
		expanded, err := expandValue(*field(&configFile))
		if err != nil {
			return nil, utils.NewIOError(fmt.Sprintf("failed to expand %s", key), err).
				WithContext("path", configPath)
		}
		*field(&configFile) = expanded
	}

	return configFileToConfig(&configFile), nil
}

// expandValue resolves environment variables and a leading ~ in a path
// setting. Empty values stay empty.
func expandValue(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return utils.ExpandPath(value)
}

// SaveConfig saves the persisted part of config to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), constants.DefaultDirPermission); err != nil {
		return utils.NewIOError("failed to create config directory", err)
	}

	return saveConfigFile(configPath, configToConfigFile(config))
}

func saveConfigFile(configPath string, configFile *ConfigFile) error {
	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return utils.NewSystemError("failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, constants.DefaultFilePermission); err != nil {
		return utils.NewIOError("failed to write config file", err)
	}

	return nil
}

// DetectCamelotPath looks for the camelot executable on PATH and in the
// platform's usual install locations. It returns "" when nothing is found.
func DetectCamelotPath() string {
	candidates := append([]string{utils.DefaultPathUtils.GetExecutableName(constants.DefaultEngineBinary)},
		constants.GetPlatformConfig().CamelotPaths...)

	for _, candidate := range candidates {
		var detected string
		if filepath.IsAbs(candidate) {
			detected = candidate
		} else if found, err := exec.LookPath(candidate); err == nil {
			detected = found
		}

		if detected != "" && utils.DefaultPathUtils.IsExecutable(detected) {
			return utils.NormalizePath(detected)
		}
	}
	return ""
}

func configFileToConfig(cf *ConfigFile) *Config {
	config := newDefaults()
	config.CamelotPath = cf.CamelotPath
	config.TempDir = cf.TempDir
	return config
}

func configToConfigFile(c *Config) *ConfigFile {
	return &ConfigFile{
		CamelotPath: c.CamelotPath,
		TempDir:     c.TempDir,
	}
}

// GetConfigValue gets a specific configuration value by key
func GetConfigValue(key string) (string, error) {
	field, ok := configKeys[key]
	if !ok {
		return "", unknownKeyError(key)
	}

	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return *field(configToConfigFile(config)), nil
}

// SetConfigValue sets a specific configuration value by key and saves the
// file. Environment variables and a leading ~ in the value are expanded.
func SetConfigValue(key, value string) error {
	field, ok := configKeys[key]
	if !ok {
		return unknownKeyError(key)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	expanded, err := expandValue(value)
	if err != nil {
		return utils.NewIOError(fmt.Sprintf("failed to expand %s", key), err)
	}

	configFile := configToConfigFile(config)
	*field(configFile) = expanded

	return SaveConfig(configFileToConfig(configFile))
}

// ListConfigKeys returns all available configuration keys
func ListConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func unknownKeyError(key string) error {
	return utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil).
		WithContext("valid_keys", ListConfigKeys())
}
