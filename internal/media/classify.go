package media

import (
	"path/filepath"
	"strings"
)

// Kind identifies the broad category a file belongs to based on its extension.
type Kind int

const (
	KindOther Kind = iota
	KindPhoto
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	default:
		return "other"
	}
}

var photoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".heic": {},
	".tif":  {},
	".tiff": {},
	".nef":  {},
	".cr2":  {},
	".arw":  {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
	".avi": {},
	".mkv": {},
	".mts": {},
}

// Classify maps a file name to its media kind. The match is purely on the
// lowercased extension; names without a recognized suffix are KindOther.
func Classify(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := photoExtensions[ext]; ok {
		return KindPhoto
	}
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo
	}
	return KindOther
}

// IsMedia reports whether the file name carries a photo or video extension.
func IsMedia(name string) bool {
	return Classify(name) != KindOther
}

// Hidden reports whether the file or directory name is hidden and should be
// excluded from scans.
func Hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Stats accumulates per-kind file counts for a directory subtree.
type Stats struct {
	Photos int
	Videos int
	Other  int
}

// Add merges other into s.
func (s *Stats) Add(other Stats) {
	s.Photos += other.Photos
	s.Videos += other.Videos
	s.Other += other.Other
}

// Count increments the counter matching kind.
func (s *Stats) Count(kind Kind) {
	switch kind {
	case KindPhoto:
		s.Photos++
	case KindVideo:
		s.Videos++
	case KindOther:
		s.Other++
	}
}

// Total returns the number of counted files across all kinds.
func (s Stats) Total() int {
	return s.Photos + s.Videos + s.Other
}
