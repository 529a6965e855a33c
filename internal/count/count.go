// Package count aggregates per-folder media statistics and renders them as a
// tree, with subtree totals rolled up into every parent.
package count

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mediajanitor/internal/janitor"
	"mediajanitor/internal/media"
)

// Scan walks root and returns aggregated statistics per directory. Each
// directory's Stats includes everything beneath it; hidden files and
// directories are excluded.
func Scan(root string) (map[string]media.Stats, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, janitor.Wrap(janitor.ErrRootNotFound, "count", root, err)
	}

	stats := make(map[string]media.Stats)
	var dirs []string

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if media.Hidden(name) && path != root {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		}
		if media.Hidden(name) {
			return nil
		}
		s := stats[filepath.Dir(path)]
		s.Count(media.Classify(name))
		stats[filepath.Dir(path)] = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Roll child totals into parents, deepest directories first.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		if dir == root {
			continue
		}
		parent := filepath.Dir(dir)
		p := stats[parent]
		p.Add(stats[dir])
		stats[parent] = p
	}

	return stats, nil
}

// Render writes an indented tree of root and its subfolders with their
// aggregated counts.
func Render(w io.Writer, root string, stats map[string]media.Stats) {
	renderDir(w, root, stats, "")
}

func renderDir(w io.Writer, path string, stats map[string]media.Stats, prefix string) {
	s := stats[path]
	fmt.Fprintf(w, "%s└── %s/ (Photos: %d, Videos: %d, Other: %d)\n",
		prefix, filepath.Base(path), s.Photos, s.Videos, s.Other)

	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() && !media.Hidden(entry.Name()) {
			subdirs = append(subdirs, entry.Name())
		}
	}
	sort.Strings(subdirs)
	for _, name := range subdirs {
		renderDir(w, filepath.Join(path, name), stats, prefix+strings.Repeat(" ", 4))
	}
}
