package cmd

import (
	"fmt"
	"strings"

	"github.com/nodewee/go-camelot/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the camelot path configuration",
	Long: `Manage persisted settings.

Configuration is stored in a JSON file in your user configuration directory
(~/.go-camelot/config.json, or $` + config.ConfigDirEnv + `/config.json).

Keys:
  camelot_path  - camelot executable (auto-detected on first run)
  temp_dir      - where extract runs create their scratch directories

Examples:
  go-camelot config list
  go-camelot config get camelot_path
  go-camelot config set camelot_path /opt/venv/bin/camelot`,
}

// listConfig lists all persisted settings
func listConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Println("🛠️  Configuration")
	fmt.Println("=================")

	configPath, _ := config.GetConfigFilePath()
	fmt.Printf("📁 Config file: %s\n\n", configPath)

	fmt.Printf("  %-14s = %s\n", "camelot_path", getDisplayValue(cfg.CamelotPath))
	fmt.Printf("  %-14s = %s\n", "temp_dir", getDisplayValue(cfg.TempDir))

	fmt.Println("\n💡 Tip: Use 'go-camelot config set <key> <value>' to change a value")
	fmt.Println("💡 Note: Log level, verbosity and timeout come from GO_CAMELOT_* environment variables")
	return nil
}

// getConfig prints a specific configuration value
func getConfig(key string) error {
	value, err := config.GetConfigValue(key)
	if err != nil {
		return err
	}

	fmt.Printf("📝 %s = %s\n", key, getDisplayValue(value))
	return nil
}

// setConfig sets a specific configuration value
func setConfig(key, value string) error {
	if err := config.SetConfigValue(key, value); err != nil {
		return err
	}

	fmt.Printf("✅ Successfully set %s = %s\n", key, value)
	if key == "camelot_path" {
		fmt.Printf("💡 Tip: Make sure camelot is installed and accessible at this path\n")
	}
	return nil
}

// getDisplayValue returns a display-friendly value for empty strings
func getDisplayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// configListCmd represents the 'config list' command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listConfig()
	},
}

// configGetCmd represents the 'config get' command
var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a specific setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.ListConfigKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getConfig(args[0])
	},
}

// configSetCmd represents the 'config set' command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific setting (" + strings.Join(config.ListConfigKeys(), ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
