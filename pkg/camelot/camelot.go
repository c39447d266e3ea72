// Package camelot drives the camelot command line tool to extract tables
// from PDF files.
//
// Options describe one job, BuildArgs turns them into engine arguments and
// Runner executes the engine and reads back the files it wrote:
//
//	opts := camelot.Lattice("report.pdf").Pages("1-3").JSON()
//	tables, err := camelot.NewRunner("camelot").Extract(ctx, opts)
package camelot

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nodewee/go-camelot/pkg/constants"
	"github.com/nodewee/go-camelot/pkg/interfaces"
	"github.com/nodewee/go-camelot/pkg/logger"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Runner executes engine invocations. It holds no per-job state, so one
// Runner may serve concurrent jobs as long as each job has its own Options.
type Runner struct {
	binary      string
	executor    interfaces.CommandExecutor
	collector   *Collector
	tempManager func() interfaces.TempFileManager
	logger      *logger.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithExecutor replaces the process executor
func WithExecutor(executor interfaces.CommandExecutor) RunnerOption {
	return func(r *Runner) { r.executor = executor }
}

// WithFileSystem replaces the file system used to harvest output
func WithFileSystem(fs interfaces.FileSystem) RunnerOption {
	return func(r *Runner) { r.collector = NewCollector(fs) }
}

// WithTempManagerFactory replaces how Extract obtains its scratch directory
func WithTempManagerFactory(factory func() interfaces.TempFileManager) RunnerOption {
	return func(r *Runner) { r.tempManager = factory }
}

// WithTempDir makes Extract create its scratch directories under dir
func WithTempDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.tempManager = func() interfaces.TempFileManager {
			return utils.NewSimpleTempManager(dir, r.logger)
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the current one.
func WithLogger(log *logger.Logger) RunnerOption {
	return func(r *Runner) {
		if log != nil {
			r.logger = log
		}
	}
}

// NewRunner creates a Runner calling the engine at binary
func NewRunner(binary string, opts ...RunnerOption) *Runner {
	if binary == "" {
		binary = constants.DefaultEngineBinary
	}

	r := &Runner{
		binary:    binary,
		executor:  utils.NewOSExecutor(),
		collector: NewCollector(nil),
		logger:    logger.Discard(),
	}
	r.tempManager = func() interfaces.TempFileManager {
		return utils.NewSimpleTempManager("", r.logger)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save runs the job writing output next to outputPath and returns the
// files produced. The caller owns outputPath and its directory.
func (r *Runner) Save(ctx context.Context, opts *Options, outputPath string) ([]types.Artifact, error) {
	if err := r.run(ctx, opts, BuildArgs(opts, outputPath)); err != nil {
		return nil, err
	}

	artifacts, err := r.collector.Collect(outputPath, opts.GetFormat())
	if err != nil {
		return nil, err
	}

	r.logger.Progress("📊", "Collected %d table file(s) for %s", len(artifacts), opts.GetPath())
	return artifacts, nil
}

// Extract runs the job in a scratch directory and returns the files
// produced. The scratch directory is removed before Extract returns,
// whether it succeeds or not.
func (r *Runner) Extract(ctx context.Context, opts *Options) ([]types.Artifact, error) {
	tm := r.tempManager()

	var artifacts []types.Artifact
	err := tm.WithCleanup(func() error {
		dir, err := tm.CreateTempDir(constants.TempDirPrefix)
		if err != nil {
			return utils.NewIOError("failed to create working directory", err)
		}

		outputPath := filepath.Join(dir, constants.ExtractOutputStem+"."+opts.GetFormat().Extension())
		artifacts, err = r.Save(ctx, opts, outputPath)
		return err
	})
	if err != nil {
		return nil, err
	}

	return artifacts, nil
}

// Plot runs the engine in plot mode to visualise how it sees the page.
// Nothing is harvested and kind is not kept on opts. An empty kind means
// "text".
func (r *Runner) Plot(ctx context.Context, opts *Options, kind string) error {
	if kind == "" {
		kind = constants.DefaultPlotKind
	}
	return r.run(ctx, opts, BuildPlotArgs(opts, kind))
}

// run executes the engine once and classifies a non-zero exit
func (r *Runner) run(ctx context.Context, opts *Options, args []string) error {
	command := CommandLine(r.binary, args)
	r.logger.Debug("Running camelot command: %s", command)

	result, err := r.executor.Execute(ctx, r.binary, args)
	if err != nil {
		return utils.WrapError(err, "", fmt.Sprintf("failed to run %s", r.binary)).
			WithContext("command", command)
	}

	if !result.Success() {
		r.logger.Error("Camelot exited with status %d: %s", result.ExitCode, string(result.Stderr))
		return classifyFailure(opts.GetPath(), command, result)
	}

	r.logger.Debug("Camelot command completed successfully")
	return nil
}
