package classify

import (
	"os"
	"time"

	"github.com/deadcoast/sik-sort/pkg/types"
	"github.com/rwcarlsen/goexif/exif"
)

// DateClassifier derives a date-bucket folder name from a file timestamp.
type DateClassifier struct {
	useCreation bool
	useEXIF     bool
	format      string
}

// NewDateClassifier builds a classifier. format is a Go time layout and is
// assumed already validated by the configuration layer. With useCreation the
// platform metadata-change time is used where available; platforms without it
// fall back to the modification time. With useEXIF, images take their bucket
// from the EXIF capture time when present.
func NewDateClassifier(useCreation, useEXIF bool, format string) *DateClassifier {
	return &DateClassifier{
		useCreation: useCreation,
		useEXIF:     useEXIF,
		format:      format,
	}
}

// Bucket returns the formatted bucket string for a file. A stat failure is a
// per-file error for the caller.
func (d *DateClassifier) Bucket(path string) (string, error) {
	if d.useEXIF && ByType(path) == types.CategoryImage {
		if t, ok := captureTime(path); ok {
			return t.Format(d.format), nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	t := info.ModTime()
	if d.useCreation {
		t = changeTime(info)
	}
	return t.Format(d.format), nil
}

// IsBucketName reports whether name round-trips through the active layout.
// Used to exclude already-created date folders from re-scanning.
func (d *DateClassifier) IsBucketName(name string) bool {
	t, err := time.Parse(d.format, name)
	if err != nil {
		return false
	}
	return t.Format(d.format) == name
}

// captureTime extracts the EXIF shooting time, trying DateTimeOriginal first
// and DateTimeDigitized second.
func captureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	if t, err := x.DateTime(); err == nil {
		return t, true
	}

	if tag, err := x.Get(exif.DateTimeDigitized); err == nil {
		if strVal, err := tag.StringVal(); err == nil {
			if t, err := time.Parse("2006:01:02 15:04:05", strVal); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}
