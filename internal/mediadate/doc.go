// Package mediadate produces best-guess timestamps for library files.
//
// Photos are dated from their EXIF DateTimeOriginal tag when it is present
// and well-formed; everything else, and every EXIF failure, falls back to the
// filesystem modification time. The package also recognizes camera-style
// filename timestamps and parses the flexible date strings accepted by
// assign-date.
package mediadate
