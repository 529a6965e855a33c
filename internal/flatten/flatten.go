// Package flatten collapses a nested folder tree into a single directory,
// resolving same-named files by keeping the largest copy.
package flatten

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"mediajanitor/internal/fileutil"
	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
)

// Options configures one flatten run.
type Options struct {
	Source string
	Target string
	DryRun bool
}

// Summary reports what a flatten run did (or would do).
type Summary struct {
	Moved    int
	Replaced int
	Dropped  int
	Errors   int
}

type seenFile struct {
	path string
	size int64
}

// Run moves every file under Source into Target. When two files share a name
// the larger wins and the smaller is removed. Files already inside Target are
// left alone.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Summary, error) {
	logger = logging.NewComponentLogger(logger, "flatten")
	var summary Summary

	if _, err := os.Stat(opts.Source); err != nil {
		return summary, janitor.Wrap(janitor.ErrRootNotFound, "flatten", opts.Source, err)
	}
	absTarget, err := filepath.Abs(opts.Target)
	if err != nil {
		return summary, err
	}
	if !opts.DryRun {
		if err := os.MkdirAll(absTarget, 0o755); err != nil {
			return summary, err
		}
	}

	seen := make(map[string]seenFile)

	walkErr := filepath.WalkDir(opts.Source, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		absDir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return err
		}
		if absDir == absTarget {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			logger.Warn("cannot stat file", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}

		name := entry.Name()
		dest := filepath.Join(absTarget, name)

		existing, dup := seen[name]
		switch {
		case !dup:
			logger.Info("moving file",
				logging.String("src", path),
				logging.String("dest", dest),
				logging.Bool("dry_run", opts.DryRun))
			if !opts.DryRun {
				if err := fileutil.Move(path, dest); err != nil {
					logger.Warn("move failed", logging.String("path", path), logging.Error(err))
					summary.Errors++
					return nil
				}
			}
			seen[name] = seenFile{path: dest, size: info.Size()}
			summary.Moved++
		case info.Size() > existing.size:
			logger.Info("replacing with bigger copy",
				logging.String("old", existing.path),
				logging.String("new", path),
				logging.Bool("dry_run", opts.DryRun))
			if !opts.DryRun {
				if err := os.Remove(existing.path); err != nil {
					logger.Warn("remove failed", logging.String("path", existing.path), logging.Error(err))
					summary.Errors++
					return nil
				}
				if err := fileutil.Move(path, dest); err != nil {
					logger.Warn("move failed", logging.String("path", path), logging.Error(err))
					summary.Errors++
					return nil
				}
			}
			seen[name] = seenFile{path: dest, size: info.Size()}
			summary.Replaced++
		default:
			logger.Info("dropping smaller duplicate",
				logging.String("path", path),
				logging.Bool("dry_run", opts.DryRun))
			if !opts.DryRun {
				if err := os.Remove(path); err != nil {
					logger.Warn("remove failed", logging.String("path", path), logging.Error(err))
					summary.Errors++
					return nil
				}
			}
			summary.Dropped++
		}
		return nil
	})

	return summary, walkErr
}
