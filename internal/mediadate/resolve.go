package mediadate

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"mediajanitor/internal/media"
)

// exifLayout is the tag format mandated by the EXIF standard for
// DateTimeOriginal.
const exifLayout = "2006:01:02 15:04:05"

// Source identifies where a resolved timestamp came from.
type Source int

const (
	SourceModTime Source = iota
	SourceEXIF
)

func (s Source) String() string {
	if s == SourceEXIF {
		return "exif"
	}
	return "mtime"
}

// Resolution is a best-guess timestamp for a file together with its origin,
// so callers can log fallbacks without changing control flow on them.
type Resolution struct {
	Time   time.Time
	Source Source
}

// ExifTime reads the EXIF DateTimeOriginal tag from the file at path.
// It fails for files without EXIF data, with a corrupt metadata container,
// or with a malformed tag value.
func ExifTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, fmt.Errorf("missing DateTimeOriginal: %w", err)
	}
	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("read DateTimeOriginal: %w", err)
	}
	ts, err := time.ParseInLocation(exifLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed DateTimeOriginal %q: %w", value, err)
	}
	return ts, nil
}

// Resolve produces a best-guess timestamp for the file: the EXIF capture time
// for photos, the filesystem modification time otherwise or whenever EXIF is
// unavailable. The only error condition is a failed stat on the file itself.
func Resolve(path string, kind media.Kind) (Resolution, error) {
	if kind == media.KindPhoto {
		if ts, err := ExifTime(path); err == nil {
			return Resolution{Time: ts, Source: SourceEXIF}, nil
		}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Time: info.ModTime(), Source: SourceModTime}, nil
}
