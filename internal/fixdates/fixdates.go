// Package fixdates rewrites file modification times from more trustworthy
// sources. Photos prefer their EXIF capture time; anything else falls back to
// a date embedded in the filename.
package fixdates

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
	"mediajanitor/internal/mediadate"
)

// Modification times within this window of the authoritative date are left
// untouched.
const tolerance = time.Second

// Options configures one fix-dates run.
type Options struct {
	Root   string
	DryRun bool
}

// Summary reports the outcome of a fix-dates run.
type Summary struct {
	Scanned int
	Fixed   int
	Skipped int
	Errors  int
}

// Run walks Root and resets the mtime of every media file whose modification
// time disagrees with its EXIF or filename date. Files with no usable source
// are skipped.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Summary, error) {
	logger = logging.NewComponentLogger(logger, "fix-dates")
	var summary Summary

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return summary, janitor.Wrap(janitor.ErrRootNotFound, "fix-dates", opts.Root, err)
	}

	walkErr := filepath.WalkDir(opts.Root, func(path string, entry fs.DirEntry, err error) error {
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
			if media.Hidden(name) && path != opts.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if media.Hidden(name) || !media.IsMedia(name) {
			return nil
		}
		summary.Scanned++

		want, ok := authoritativeDate(path, name, logger)
		if !ok {
			summary.Skipped++
			return nil
		}

		fi, err := entry.Info()
		if err != nil {
			logger.Warn("cannot stat file", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}
		diff := fi.ModTime().Sub(want)
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			summary.Skipped++
			return nil
		}

		logger.Info("fixing modification time",
			logging.String("path", path),
			logging.Time("old", fi.ModTime()),
			logging.Time("new", want),
			logging.Bool("dry_run", opts.DryRun))
		if !opts.DryRun {
			if err := os.Chtimes(path, want, want); err != nil {
				logger.Warn("chtimes failed", logging.String("path", path), logging.Error(err))
				summary.Errors++
				return nil
			}
		}
		summary.Fixed++
		return nil
	})

	return summary, walkErr
}

func authoritativeDate(path, name string, logger *slog.Logger) (time.Time, bool) {
	if media.Classify(name) == media.KindPhoto {
		if ts, err := mediadate.ExifTime(path); err == nil {
			return ts, true
		}
		logger.Debug("no EXIF date, trying filename", logging.String("path", path))
	}
	if ts, ok := mediadate.FromFilename(name); ok {
		return ts, true
	}
	return time.Time{}, false
}
