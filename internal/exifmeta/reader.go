// Package exifmeta reads the capture time and artist of an image from its
// embedded EXIF data.
package exifmeta

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"base36-images/internal/naming"
)

// ErrUnreadable is returned when a file cannot be opened or carries no EXIF
// data that could be decoded.
var ErrUnreadable = errors.New("not readable or no exif data")

// Author is the optional artist of an image. Present is false when the
// Artist tag is missing or not stored as text.
type Author struct {
	Name    string
	Present bool
}

// Metadata holds the fields the renamer needs. Moment is nil when the image
// has no usable DateTimeOriginal or DateTime tag.
type Metadata struct {
	Moment *naming.Moment
	Author Author
}

// Reader reads metadata from image files on disk.
type Reader struct{}

// Read decodes the EXIF block of the file at path.
func (Reader) Read(path string) (Metadata, error) {
	return Read(path)
}

// Read decodes the EXIF block of the file at path.
func Read(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return Metadata{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return fromExif(x), nil
}

func fromExif(x *exif.Exif) Metadata {
	var md Metadata

	if m, ok := captureMoment(x); ok {
		md.Moment = &m
	}

	if tag, err := x.Get(exif.Artist); err == nil {
		if name, err := tag.StringVal(); err == nil {
			md.Author = Author{Name: name, Present: true}
		}
	}

	return md
}

// exifTimeLayout is how EXIF stores DateTimeOriginal and DateTime.
const exifTimeLayout = "2006:01:02 15:04:05"

// captureMoment reads DateTimeOriginal, falling back to DateTime. Values are
// parsed in UTC so the wall-clock fields come back exactly as written, even
// for times that do not exist in the local zone.
func captureMoment(x *exif.Exif) (naming.Moment, bool) {
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		t, err := time.ParseInLocation(exifTimeLayout, strings.TrimRight(s, "\x00 "), time.UTC)
		if err != nil {
			continue
		}
		return naming.MomentOf(t), true
	}
	return naming.Moment{}, false
}
