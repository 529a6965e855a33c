// Package assigndate stamps an operator-chosen date onto media files as their
// modification time.
package assigndate

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
)

// Modification times already within this window of the requested date are
// counted as skipped.
const tolerance = time.Second

// Options configures one assign-date run. Path may be a single media file or
// a directory, in which case every media file beneath it is stamped.
type Options struct {
	Path   string
	Date   time.Time
	DryRun bool
}

// Summary reports the outcome of an assign-date run.
type Summary struct {
	Assigned int
	Skipped  int
	Errors   int
}

// Run sets the modification time of the target file, or of every media file
// under the target directory, to opts.Date.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Summary, error) {
	logger = logging.NewComponentLogger(logger, "assign-date")
	var summary Summary

	info, err := os.Stat(opts.Path)
	if err != nil {
		return summary, janitor.Wrap(janitor.ErrRootNotFound, "assign-date", opts.Path, err)
	}

	if !info.IsDir() {
		if !media.IsMedia(info.Name()) {
			return summary, janitor.Wrap(janitor.ErrValidation, "assign-date", "not a media file: "+opts.Path, nil)
		}
		assignOne(opts.Path, info, opts, logger, &summary)
		return summary, nil
	}

	walkErr := filepath.WalkDir(opts.Path, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if media.Hidden(name) && path != opts.Path {
				return filepath.SkipDir
			}
			return nil
		}
		if media.Hidden(name) || !media.IsMedia(name) {
			return nil
		}
		fi, err := entry.Info()
		if err != nil {
			logger.Warn("cannot stat file", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}
		assignOne(path, fi, opts, logger, &summary)
		return nil
	})

	return summary, walkErr
}

func assignOne(path string, fi fs.FileInfo, opts Options, logger *slog.Logger, summary *Summary) {
	diff := fi.ModTime().Sub(opts.Date)
	if diff < 0 {
		diff = -diff
	}
	if diff <= tolerance {
		summary.Skipped++
		return
	}

	logger.Info("assigning date",
		logging.String("path", path),
		logging.Time("date", opts.Date),
		logging.Bool("dry_run", opts.DryRun))
	if !opts.DryRun {
		if err := os.Chtimes(path, opts.Date, opts.Date); err != nil {
			logger.Warn("chtimes failed", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return
		}
	}
	summary.Assigned++
}
