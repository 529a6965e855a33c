package organize

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"mediajanitor/internal/fileutil"
	"mediajanitor/internal/logging"
)

// isYearName reports whether name is exactly four ASCII digits. Such folders
// are organized output and are protected from scanning and cleanup.
func isYearName(name string) bool {
	if len(name) != 4 {
		return false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Cleanup removes now-empty directories under root, deepest first, leaving
// the root itself and year-named folders alone. Removal failures are logged
// and do not abort the sweep. Returns the number of removed directories.
func Cleanup(root string, logger *slog.Logger) int {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || !entry.IsDir() || path == root {
			return nil
		}
		dirs = append(dirs, path)
		return nil
	})

	// Deepest paths first so emptied parents become removable in one pass.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	removed := 0
	for _, dir := range dirs {
		if isYearName(filepath.Base(dir)) {
			continue
		}
		empty, err := fileutil.IsEmptyDir(dir)
		if err != nil || !empty {
			continue
		}
		if err := os.Remove(dir); err != nil {
			logger.Warn("could not remove empty directory", logging.String("path", dir), logging.Error(err))
			continue
		}
		removed++
	}
	return removed
}
