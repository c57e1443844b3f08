// Package classify maps files to type, size, and date buckets.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/deadcoast/sik-sort/pkg/types"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tiff": true, ".webp": true, ".svg": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".wmv": true,
	".flv": true, ".webm": true, ".m4v": true, ".mpg": true, ".mpeg": true,
}

var archiveExtensions = map[string]bool{
	".zip": true, ".rar": true, ".7z": true, ".tar": true,
	".gz": true, ".bz2": true, ".xz": true, ".iso": true,
}

// ByType returns the category for a path from its extension alone.
// Lookup is case-insensitive; unknown extensions fall through to misc.
func ByType(path string) types.FileCategory {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case imageExtensions[ext]:
		return types.CategoryImage
	case videoExtensions[ext]:
		return types.CategoryVideo
	case archiveExtensions[ext]:
		return types.CategoryArchive
	default:
		return types.CategoryMisc
	}
}
