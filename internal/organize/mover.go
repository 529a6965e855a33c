package organize

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"mediajanitor/internal/fileutil"
	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
	"mediajanitor/internal/mediadate"
)

// Mover executes folder and file relocations into year/month buckets.
// In dry-run mode every decision and destination is computed and logged
// identically, but nothing on disk changes.
type Mover struct {
	PhotoRoot string
	VideoRoot string
	DryRun    bool
	Logger    *slog.Logger
}

// MoveFolder relocates the whole directory src to destRoot/year/month/name.
// An existing destination refuses the move and leaves the source in place;
// the returned error wraps janitor.ErrCollision so callers can count it.
func (m *Mover) MoveFolder(src, destRoot string, bucket Bucket, name string) error {
	dest := filepath.Join(destRoot, bucket.Path(), name)

	if _, err := os.Stat(dest); err == nil {
		m.Logger.Warn("destination folder already exists",
			logging.String("src", src), logging.String("dest", dest))
		return janitor.Wrap(janitor.ErrCollision, "move folder", dest, nil)
	}

	m.Logger.Info("moving folder",
		logging.String("name", name),
		logging.String("dest", dest),
		logging.Bool("dry_run", m.DryRun))
	if m.DryRun {
		return nil
	}
	return fileutil.Move(src, dest)
}

// UngroupResult tallies the outcome of dispersing one folder.
type UngroupResult struct {
	Moved      int
	Collisions int
	Errors     int
}

// Ungroup moves every non-hidden media file under src individually into its
// own per-file date bucket, photos to PhotoRoot and videos to VideoRoot.
// Per-file collisions and failures are counted and skipped; they never abort
// the batch. If the source folder ends up empty it is removed.
func (m *Mover) Ungroup(ctx context.Context, src string) (UngroupResult, error) {
	var result UngroupResult

	walkErr := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			m.Logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			result.Errors++
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if media.Hidden(name) && path != src {
				return filepath.SkipDir
			}
			return nil
		}
		if media.Hidden(name) {
			return nil
		}

		kind := media.Classify(name)
		var destRoot string
		switch kind {
		case media.KindPhoto:
			destRoot = m.PhotoRoot
		case media.KindVideo:
			destRoot = m.VideoRoot
		case media.KindOther:
			return nil
		}

		res, err := mediadate.Resolve(path, kind)
		if err != nil {
			m.Logger.Warn("cannot resolve file date", logging.String("path", path), logging.Error(err))
			result.Errors++
			return nil
		}

		bucket := Bucket{Year: res.Time.Year(), Month: int(res.Time.Month())}
		dest := filepath.Join(destRoot, bucket.Path(), name)

		if _, err := os.Stat(dest); err == nil {
			m.Logger.Warn("file already exists, skipping",
				logging.String("name", name), logging.String("dest", dest))
			result.Collisions++
			return nil
		}

		m.Logger.Info("moving file",
			logging.String("name", name),
			logging.String("dest", dest),
			logging.Bool("dry_run", m.DryRun))
		if m.DryRun {
			result.Moved++
			return nil
		}
		if err := fileutil.Move(path, dest); err != nil {
			m.Logger.Warn("move failed", logging.String("path", path), logging.Error(err))
			result.Errors++
			return nil
		}
		result.Moved++
		return nil
	})
	if walkErr != nil {
		return result, walkErr
	}

	if !m.DryRun {
		if empty, err := fileutil.IsEmptyDir(src); err == nil && empty {
			if err := os.Remove(src); err != nil {
				m.Logger.Warn("could not delete folder", logging.String("path", src), logging.Error(err))
			}
		}
	}
	return result, nil
}
