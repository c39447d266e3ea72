package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nodewee/go-camelot/pkg/camelot"
	"github.com/nodewee/go-camelot/pkg/config"
	"github.com/nodewee/go-camelot/pkg/jobfile"
	"github.com/nodewee/go-camelot/pkg/logger"
	"github.com/nodewee/go-camelot/pkg/tables"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	jobOpts     jobFlags
	outputPath  string
	decode      bool
	verbose     bool
	showVersion bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config        *config.Config
	logger        *logger.Logger
	runner        *camelot.Runner
	out           io.Writer
	runnerOptions []camelot.RunnerOption
}

// NewAppHandler creates an application handler writing results to out
func NewAppHandler(out io.Writer, opts ...camelot.RunnerOption) *AppHandler {
	return &AppHandler{out: out, runnerOptions: opts}
}

// initialize loads configuration and builds the runner
func (h *AppHandler) initialize() error {
	if h.config == nil {
		h.config = config.LoadConfigWithEnvOverrides()
	}
	if verbose {
		h.config.EnableVerbose = true
	}

	if err := h.config.Validate(); err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "configuration validation failed")
	}

	h.logger = logger.NewLoggerWithWriter(h.config.LogLevel, h.config.EnableVerbose, os.Stderr)
	h.logger.Debug("Using %s", h.config)
	h.runner = h.config.NewRunner(h.logger, h.runnerOptions...)
	return nil
}

// RunJob runs a single job. Jobs with an output path keep the engine's
// files there, others are extracted through a scratch directory.
func (h *AppHandler) RunJob(job *jobfile.Job) ([]types.Artifact, error) {
	if h.runner == nil {
		if err := h.initialize(); err != nil {
			return nil, err
		}
	}

	opts, err := job.Options()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout())
	defer cancel()

	h.logger.Progress("🔍", "Reading tables from %s (%s mode)", opts.GetPath(), opts.GetMode())

	if job.Output == "" {
		return h.runner.Extract(ctx, opts)
	}

	if err := utils.EnsureDir(filepath.Dir(job.Output)); err != nil {
		return nil, utils.NewIOError("failed to create output directory", err)
	}
	return h.runner.Save(ctx, opts, job.Output)
}

// Plot runs the engine's diagnostic plot for job
func (h *AppHandler) Plot(job *jobfile.Job, kind string) error {
	if h.runner == nil {
		if err := h.initialize(); err != nil {
			return err
		}
	}

	opts, err := job.Options()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout())
	defer cancel()

	return h.runner.Plot(ctx, opts, kind)
}

// ProcessJob runs job and displays the result
func (h *AppHandler) ProcessJob(job *jobfile.Job) error {
	artifacts, err := h.RunJob(job)
	if err != nil {
		return err
	}
	return h.displayResults(job, artifacts)
}

// ProcessJobFile runs every job of a YAML job file in order, stopping at the
// first failure
func (h *AppHandler) ProcessJobFile(path string) error {
	jobs, err := jobfile.Load(path)
	if err != nil {
		return err
	}

	for i := range jobs {
		job := &jobs[i]
		if err := h.ProcessJob(job); err != nil {
			return utils.WrapError(err, "", fmt.Sprintf("job %d (%s)", i+1, job.Source))
		}
	}
	return nil
}

// displayResults prints saved file paths, raw table files, or decoded tables
func (h *AppHandler) displayResults(job *jobfile.Job, artifacts []types.Artifact) error {
	if job.Output != "" {
		fmt.Fprintf(h.out, "✅ Saved %d table file(s) for %s\n", len(artifacts), job.Source)
		dir := filepath.Dir(job.Output)
		for _, artifact := range artifacts {
			fmt.Fprintf(h.out, "  📄 %s\n", filepath.Join(dir, artifact.Name))
		}
		return nil
	}

	if decode {
		format, _ := types.ParseFormat(job.Format)
		if format == "" {
			format = types.FormatCSV
		}
		decoded, err := tables.DecodeArtifacts(format, artifacts)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(decoded, "", "  ")
		if err != nil {
			return utils.NewSystemError("failed to encode tables", err)
		}
		fmt.Fprintf(h.out, "%s\n", data)
		return nil
	}

	for _, artifact := range artifacts {
		fmt.Fprintf(h.out, "==> %s <==\n%s\n", artifact.Name, artifact.Content)
	}
	if len(artifacts) == 0 {
		h.logger.ProgressAlways("⚠️", "No tables found in %s", job.Source)
	}
	return nil
}

// formatError renders err as "Error (<type>): <message>"
func formatError(err error) string {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.Cause != nil {
			message += ": " + appErr.Cause.Error()
		}
		return fmt.Sprintf("Error (%s): %s", appErr.Type, message)
	}
	return fmt.Sprintf("Error (%s): %v", utils.GetErrorType(err), err)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-camelot [flags] <file.pdf>",
	Short: "Extract tables from PDF files with camelot",
	Long: `A CLI for extracting tables from text-based PDF files by driving the camelot
command line tool.

Parsing modes:
- lattice: tables drawn with ruling lines (default)
- stream:  tables laid out with whitespace

Without --output the tables are extracted through a temporary directory and
printed. With --output the files camelot writes are kept next to that path,
named {output}-page-{n}-table-{i}.{ext}.

Examples:
  go-camelot report.pdf                                   # Print every table as CSV
  go-camelot report.pdf -p 1,3-end -f json --decode       # Print tables of some pages as decoded JSON rows
  go-camelot report.pdf -m stream -C 72,95.5,209 --split  # Force column separators in stream mode
  go-camelot report.pdf -T 10,800,600,400 -T 10,390,600,50 # Only look inside two table areas
  go-camelot locked.pdf --password secret -o out/locked.csv
  go-camelot plot report.pdf -k grid                      # Show how camelot sees the page
  go-camelot run jobs.yaml                                # Run the jobs of a YAML file`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("%s %s\n", cmd.Name(), version)
			return nil
		}

		if len(args) == 0 {
			return cmd.Help()
		}

		job, err := jobOpts.job(args[0], cmd.Flags().Changed)
		if err != nil {
			return err
		}
		job.Output = outputPath

		return NewAppHandler(cmd.OutOrStdout()).ProcessJob(job)
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func init() {
	jobOpts.register(rootCmd)

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Keep the table files at this path instead of printing them")
	rootCmd.Flags().BoolVar(&decode, "decode", false,
		"Print csv, json or html tables as JSON rows")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
}
