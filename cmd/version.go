package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/nodewee/go-camelot/pkg/config"
	"github.com/nodewee/go-camelot/pkg/utils"

	"github.com/spf13/cobra"
)

// Version information variables - set by main.go
var (
	version   = "dev"
	gitCommit = "none"
	buildTime = "unknown"
	buildBy   = "unknown"
)

// SetVersionInfo sets the version information from main.go
func SetVersionInfo(v, commit, buildTimeParam, buildByParam string) {
	version = v
	gitCommit = commit
	buildTime = buildTimeParam
	buildBy = buildByParam
}

// GetVersionInfo returns the current version information
func GetVersionInfo() (string, string, string, string) {
	return version, gitCommit, buildTime, buildBy
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: "A CLI for extracting tables from PDF files with camelot.\n\n" +
		"Version Information:\n" +
		"- Version\n" +
		"- Git Commit\n" +
		"- Build Time\n" +
		"- Built By\n" +
		"- Go Version\n" +
		"- OS/Architecture",
	Run: func(cmd *cobra.Command, args []string) {
		showVersionInfo()
	},
}

// showVersionInfo displays comprehensive version information
func showVersionInfo() {
	fmt.Printf("📊 go-camelot\n")
	fmt.Printf("============\n\n")

	// Application information
	fmt.Printf("🔖 Version Information:\n")
	fmt.Printf("  Version:     %s\n", version)
	fmt.Printf("  Git Commit:  %s\n", gitCommit)
	fmt.Printf("  Build Time:  %s\n", buildTime)
	fmt.Printf("  Built By:    %s\n", buildBy)
	fmt.Printf("\n")

	// Runtime information
	fmt.Printf("⚙️ Runtime Information:\n")
	fmt.Printf("  Go Version:  %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  Compiler:    %s\n", runtime.Compiler)
	fmt.Printf("\n")

	// Engine information
	cfg := config.LoadConfigWithEnvOverrides()
	fmt.Printf("🐫 Engine Information:\n")
	fmt.Printf("  Camelot:     %s\n", cfg.EngineBinary())
	fmt.Printf("  Version:     %s\n", engineVersion(cfg.EngineBinary()))
	fmt.Printf("\n")

	// Additional build info
	if version != "dev" && !strings.Contains(version, "dev") && !strings.Contains(version, "+") {
		fmt.Printf("🚀 Release Information:\n")
		fmt.Printf("  This is a release build\n")
		fmt.Printf("  Release notes: https://github.com/nodewee/go-camelot/releases/tag/%s\n", version)
	} else {
		fmt.Printf("🔧 Development Information:\n")
		fmt.Printf("  This is a development build\n")
		fmt.Printf("  Not for production use\n")
	}
}

// engineVersion asks the camelot binary for its version
func engineVersion(binary string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := utils.NewOSExecutor().Execute(ctx, binary, []string{"--version"})
	if err != nil {
		return fmt.Sprintf("unavailable (%s)", utils.GetErrorType(err))
	}
	if !result.Success() {
		return fmt.Sprintf("unavailable (exit status %d)", result.ExitCode)
	}
	return strings.TrimSpace(string(result.Stdout))
}

func init() {
	// Add version command to root
	rootCmd.AddCommand(versionCmd)
}
