// Package batch runs the notebook cleaner over a list of files.
//
// Each file is read, cleaned and written back independently; a failure on
// one file is recorded in its result and never stops the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/jmylchreest/nbclean/internal/logger"
	"github.com/jmylchreest/nbclean/pkg/cleaner"
	"github.com/jmylchreest/nbclean/pkg/notebook"
)

// NotebookExt is the extension a path must have to be cleaned.
const NotebookExt = ".ipynb"

// Options configures a Processor.
type Options struct {
	// DryRun cleans in memory and reports changes without writing files.
	DryRun bool

	// MaxSize skips files larger than this many bytes. Zero means unlimited.
	MaxSize int64

	// OnResult, if set, is called after each path is processed.
	OnResult func(FileResult)
}

// Processor cleans notebooks on a filesystem.
type Processor struct {
	fs      afero.Fs
	cleaner *cleaner.Cleaner
	opts    Options
}

// New creates a Processor. A nil cleaner uses the default configuration.
func New(fsys afero.Fs, c *cleaner.Cleaner, opts Options) *Processor {
	if c == nil {
		c = cleaner.New(nil)
	}
	return &Processor{
		fs:      fsys,
		cleaner: c,
		opts:    opts,
	}
}

// Process cleans every path in order. It only returns an error when ctx is
// cancelled; the summary then covers the paths handled so far.
func (p *Processor) Process(ctx context.Context, paths []string) (*Summary, error) {
	summary := &Summary{
		Results: make([]FileResult, 0, len(paths)),
		Total:   len(paths),
		DryRun:  p.opts.DryRun,
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "batch cancelled", "processed", i, "total", len(paths))
			return summary, err
		}

		result := p.ProcessFile(path)
		summary.add(result)
		if p.opts.OnResult != nil {
			p.opts.OnResult(result)
		}
	}

	logger.DebugContext(ctx, "batch complete",
		"succeeded", summary.Succeeded,
		"total", summary.Total,
		"dry_run", p.opts.DryRun)
	return summary, nil
}

// ProcessFile reads, cleans and rewrites a single notebook.
func (p *Processor) ProcessFile(path string) FileResult {
	log := logger.With("path", path)
	result := FileResult{Path: path}

	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusMissing
			result.Reason = "File not found"
			log.Debug("notebook not found")
			return result
		}
		return failed(result, err)
	}

	if !strings.HasSuffix(path, NotebookExt) {
		result.Status = StatusSkipped
		result.Reason = "not a " + NotebookExt + " file"
		log.Debug("skipping non-notebook path")
		return result
	}

	if p.opts.MaxSize > 0 && info.Size() > p.opts.MaxSize {
		result.Status = StatusSkipped
		result.Reason = fmt.Sprintf("larger than %s", humanize.Bytes(uint64(p.opts.MaxSize)))
		log.Debug("skipping large notebook", "size", info.Size(), "max_size", p.opts.MaxSize)
		return result
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return failed(result, err)
	}
	result.InputBytes = len(data)

	cleaned, out, err := p.cleaner.CleanBytes(data)
	if err != nil {
		log.Debug("cleaning failed", "error", err)
		return failed(result, err)
	}
	result.Changes = cleaned.Changes
	result.Stats = cleaned.Stats
	result.OutputBytes = len(out)
	result.Status = StatusUnchanged
	if cleaned.Changed() {
		result.Status = StatusCleaned
	}
	if logger.Enabled(slog.LevelDebug) {
		log.Debug("notebook cleaned", "changes", len(cleaned.Changes), "stats", cleaned.Stats.String())
	}

	if p.opts.DryRun {
		return result
	}

	if err := afero.WriteFile(p.fs, path, out, info.Mode().Perm()); err != nil {
		result.Status = StatusFailed
		result.Changes = nil
		result.Errors = []string{fmt.Sprintf("Error: writing %s: %v", path, err)}
		return result
	}
	result.Written = true
	return result
}

// failed records err in the shape the report expects: parse failures are
// labelled as invalid JSON, everything else as a generic error.
func failed(result FileResult, err error) FileResult {
	result.Status = StatusFailed

	var parseErr *notebook.ParseError
	if errors.As(err, &parseErr) {
		result.Errors = []string{"Invalid JSON: " + parseErr.Err.Error()}
		return result
	}
	result.Errors = []string{"Error: " + err.Error()}
	return result
}
