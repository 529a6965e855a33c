// Package dedupe finds files with identical content and removes the copies,
// keeping the one with the shortest path.
package dedupe

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
)

// Options configures one dedupe run.
type Options struct {
	Root   string
	DryRun bool
}

// Group is a set of files sharing the same content hash. Kept is the survivor,
// Duplicates are the copies slated for removal.
type Group struct {
	Hash       string
	Size       int64
	Kept       string
	Duplicates []string
}

// Summary reports the outcome of a dedupe run.
type Summary struct {
	Scanned        int
	Groups         []Group
	Removed        int
	BytesReclaimed int64
	Errors         int
}

// Run hashes every media file under Root and removes duplicates, keeping the
// copy with the shortest path in each group. With DryRun set nothing is
// deleted; the summary reports what would go.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Summary, error) {
	logger = logging.NewComponentLogger(logger, "dedupe")
	var summary Summary

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return summary, janitor.Wrap(janitor.ErrRootNotFound, "dedupe", opts.Root, err)
	}

	type bucket struct {
		size  int64
		paths []string
	}
	byHash := make(map[string]*bucket)
	var order []string

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

		sum, size, err := hashFile(path)
		if err != nil {
			logger.Warn("cannot hash file", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return nil
		}
		summary.Scanned++

		b, ok := byHash[sum]
		if !ok {
			b = &bucket{size: size}
			byHash[sum] = b
			order = append(order, sum)
		}
		b.paths = append(b.paths, path)
		return nil
	})
	if walkErr != nil {
		return summary, walkErr
	}

	for _, sum := range order {
		b := byHash[sum]
		if len(b.paths) < 2 {
			continue
		}

		paths := append([]string(nil), b.paths...)
		sort.Slice(paths, func(i, j int) bool {
			if len(paths[i]) != len(paths[j]) {
				return len(paths[i]) < len(paths[j])
			}
			return paths[i] < paths[j]
		})

		group := Group{Hash: sum, Size: b.size, Kept: paths[0], Duplicates: paths[1:]}
		for _, dup := range group.Duplicates {
			logger.Info("removing duplicate",
				logging.String("path", dup),
				logging.String("kept", group.Kept),
				logging.Bool("dry_run", opts.DryRun))
			if !opts.DryRun {
				if err := os.Remove(dup); err != nil {
					logger.Warn("remove failed", logging.String("path", dup), logging.Error(err))
					summary.Errors++
					continue
				}
			}
			summary.Removed++
			summary.BytesReclaimed += b.size
		}
		summary.Groups = append(summary.Groups, group)
	}

	return summary, nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := md5.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// FormatSize renders a byte count as a human readable string.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
