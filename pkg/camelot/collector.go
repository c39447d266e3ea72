package camelot

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/nodewee/go-camelot/pkg/interfaces"
	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Collector finds and reads the files the engine wrote for an output path.
//
// For per-table formats the engine names files after the output path,
// "{stem}-{page}-table-{index}{ext}", e.g. "out-page-1-table-2.csv" for
// "out.csv". The extension is whatever the output path carries, even none.
// Excel and SQLite output is the output path itself.
//
// Files are returned in the order the FileSystem lists them and are not
// re-sorted. OSFileSystem lists in lexical order, so "table-10" comes
// before "table-2".
type Collector struct {
	fs interfaces.FileSystem
}

// NewCollector creates a collector reading through fs
func NewCollector(fs interfaces.FileSystem) *Collector {
	if fs == nil {
		fs = utils.OSFileSystem{}
	}
	return &Collector{fs: fs}
}

// Collect returns the artifacts for outputPath in listing order.
// No matching file is an empty result, not an error.
func (c *Collector) Collect(outputPath string, format types.Format) ([]types.Artifact, error) {
	dir, stem := utils.SplitOutputPath(outputPath)
	singleName := filepath.Base(outputPath)

	names, err := c.fs.ReadDir(dir)
	if err != nil {
		return nil, utils.NewIOError(fmt.Sprintf("failed to list output directory %s", dir), err)
	}

	tablePattern := artifactPattern(stem, filepath.Ext(singleName))

	artifacts := make([]types.Artifact, 0)
	for _, name := range names {
		artifact := types.Artifact{Name: name}

		if m := tablePattern.FindStringSubmatch(name); m != nil {
			artifact.Page, artifact.Index = m[1], m[2]
		} else if !(format.SingleFile() && name == singleName) {
			continue
		}

		content, err := c.fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, utils.NewIOError(fmt.Sprintf("failed to read artifact %s", name), err)
		}
		artifact.Content = content
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// artifactPattern matches per-table files; ext includes its leading dot
func artifactPattern(stem, ext string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(stem) + `-(.+)-table-([^.]+)` + regexp.QuoteMeta(ext) + `$`)
}
