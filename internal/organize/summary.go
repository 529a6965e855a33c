package organize

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
	"mediajanitor/internal/mediadate"
)

// Bucket is a year/month destination slot in the organized library.
type Bucket struct {
	Year  int
	Month int
}

func (b Bucket) String() string {
	return fmt.Sprintf("%d/%02d", b.Year, b.Month)
}

// Path returns the bucket directory relative to a destination root.
func (b Bucket) Path() string {
	return filepath.Join(fmt.Sprintf("%d", b.Year), fmt.Sprintf("%02d", b.Month))
}

// FolderSummary aggregates the dated media content of one source folder.
// Dates preserves file-walk order; its length equals Photos+Videos since
// every media file resolves to a date one way or another.
type FolderSummary struct {
	Dates  []time.Time
	Photos int
	Videos int
}

// FileCount returns the number of dated media files in the folder.
func (s FolderSummary) FileCount() int {
	return s.Photos + s.Videos
}

// ClassifyFolder walks folder recursively, resolving a date for every
// non-hidden media file. Files of other kinds are ignored. Walk errors on
// individual entries are logged and skipped so one unreadable subtree does
// not sink the whole folder.
func ClassifyFolder(folder string, logger *slog.Logger) FolderSummary {
	var summary FolderSummary

	_ = filepath.WalkDir(folder, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if media.Hidden(name) && path != folder {
				return filepath.SkipDir
			}
			return nil
		}
		if media.Hidden(name) {
			return nil
		}

		kind := media.Classify(name)
		if kind == media.KindOther {
			return nil
		}

		res, err := mediadate.Resolve(path, kind)
		if err != nil {
			logger.Warn("cannot stat media file", logging.String("path", path), logging.Error(err))
			return nil
		}
		if kind == media.KindPhoto && res.Source == mediadate.SourceModTime {
			logger.Debug("exif unavailable, using file date", logging.String("path", path))
		}

		summary.Dates = append(summary.Dates, res.Time)
		switch kind {
		case media.KindPhoto:
			summary.Photos++
		case media.KindVideo:
			summary.Videos++
		}
		return nil
	})

	return summary
}

// ChooseTargetBucket picks the (year, month) pair occurring most often in
// dates. Ties go to the pair seen first in walk order, which keeps the result
// deterministic for a given directory layout.
func ChooseTargetBucket(dates []time.Time) Bucket {
	counts := make(map[Bucket]int, len(dates))
	order := make([]Bucket, 0, len(dates))

	for _, d := range dates {
		b := Bucket{Year: d.Year(), Month: int(d.Month())}
		if _, seen := counts[b]; !seen {
			order = append(order, b)
		}
		counts[b]++
	}

	var best Bucket
	bestCount := 0
	for _, b := range order {
		if counts[b] > bestCount {
			best = b
			bestCount = counts[b]
		}
	}
	return best
}
