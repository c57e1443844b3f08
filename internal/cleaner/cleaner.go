// Package cleaner removes directories left empty after sorting.
package cleaner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FindEmpty returns directories under root with zero entries, children before
// parents. The root itself and any directory whose name is in preserveNames
// are never reported. Unreadable directories are skipped.
func FindEmpty(root string, preserveNames []string) ([]string, error) {
	preserve := make(map[string]bool, len(preserveNames))
	for _, name := range preserveNames {
		preserve[name] = true
	}

	var empty []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root || preserve[d.Name()] {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return filepath.SkipDir
		}
		if len(entries) == 0 {
			empty = append(empty, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deepest first, so a caller removing in order never hits a non-empty
	// parent before its child.
	sort.Slice(empty, func(i, j int) bool {
		return len(empty[i]) > len(empty[j])
	})
	return empty, nil
}

// Remove attempts to delete each directory and returns how many went away.
// Failures (permission, vanished, non-empty due to a race) are skipped.
func Remove(dirs []string) int {
	removed := 0
	for _, dir := range dirs {
		if err := os.Remove(dir); err == nil {
			removed++
		}
	}
	return removed
}

// Sweep iterates find+remove until a fixed point, since removing a child can
// make its parent newly empty. Returns the total removed.
func Sweep(root string, preserveNames []string) (int, error) {
	total := 0
	for {
		empty, err := FindEmpty(root, preserveNames)
		if err != nil {
			return total, err
		}
		if len(empty) == 0 {
			return total, nil
		}
		removed := Remove(empty)
		total += removed
		if removed == 0 {
			return total, nil
		}
	}
}
