package sorter

import (
	"path/filepath"
	"strings"

	"github.com/deadcoast/sik-sort/pkg/types"
)

// DuplicatesDir is where non-canonical copies are routed in duplicate mode.
const DuplicatesDir = "duplicates"

// classified carries one file through the processing loop after
// classification.
type classified struct {
	entry    types.FileEntry
	category types.FileCategory
	// bucket is the size or date folder name; empty in plain and duplicate
	// modes.
	bucket string
	// duplicate marks a non-canonical member of a hash group.
	duplicate bool
}

// relativeDest is the destination-policy function: a pure mapping from a
// classified file to its path relative to the sort root. The processing loop
// is mode-agnostic and just invokes this.
func relativeDest(mode types.SortMode, cf classified) string {
	switch mode {
	case types.ModeSize, types.ModeDate, types.ModeArchiveType:
		return filepath.Join(cf.bucket, string(cf.category), cf.entry.Name)
	case types.ModeArchiveFlat:
		return filepath.Join(cf.bucket, cf.entry.Name)
	case types.ModeDuplicate:
		if cf.duplicate {
			return filepath.Join(DuplicatesDir, duplicateName(cf.entry.Name))
		}
		return filepath.Join(string(cf.category), cf.entry.Name)
	default:
		return filepath.Join(string(cf.category), cf.entry.Name)
	}
}

// duplicateName tags a routed duplicate before its extension:
// photo.jpg -> photo_duplicate.jpg.
func duplicateName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_duplicate" + ext
}

// excludedDirs lists the static destination folder names a mode must not
// re-scan. Date-derived bucket names are dynamic and handled by the scanner
// predicate instead.
func excludedDirs(mode types.SortMode) []string {
	switch mode {
	case types.ModeSize:
		return []string{string(types.SizeSmall), string(types.SizeMedium), string(types.SizeLarge)}
	case types.ModeDate, types.ModeArchiveFlat, types.ModeArchiveType:
		return nil
	case types.ModeDuplicate:
		return append(categoryDirs(), DuplicatesDir)
	default:
		return categoryDirs()
	}
}

func categoryDirs() []string {
	cats := types.Categories()
	dirs := make([]string, len(cats))
	for i, c := range cats {
		dirs[i] = string(c)
	}
	return dirs
}
