// Package scanner enumerates regular files under a root, skipping excluded
// directory names at any depth.
package scanner

import (
	"io/fs"
	"path/filepath"

	"github.com/deadcoast/sik-sort/internal/filter"
	"github.com/deadcoast/sik-sort/pkg/types"
)

type Scanner struct {
	exclude map[string]bool
	// excludeFn covers dynamic folder names (date buckets) that cannot be
	// enumerated up front. Optional.
	excludeFn func(name string) bool
}

func New(excludedDirs []string) *Scanner {
	exclude := make(map[string]bool, len(excludedDirs))
	for _, name := range excludedDirs {
		exclude[name] = true
	}
	return &Scanner{exclude: exclude}
}

// SetExcludeFunc installs an additional directory-name predicate.
func (s *Scanner) SetExcludeFunc(fn func(name string) bool) {
	s.excludeFn = fn
}

func (s *Scanner) excluded(name string) bool {
	if s.exclude[name] {
		return true
	}
	return s.excludeFn != nil && s.excludeFn(name)
}

// Scan returns every regular file reachable from root whose ancestry contains
// no excluded directory. The root itself is always traversed, even if its own
// name is excluded. Ordering is filesystem-dependent.
func (s *Scanner) Scan(root string) ([]types.FileEntry, error) {
	var entries []types.FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		entries = append(entries, types.FileEntry{
			Path:    path,
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})

	return entries, err
}

// ScanWithFilters composes Scan with the filter stages and reports how many
// files the filters removed.
func (s *Scanner) ScanWithFilters(root string, filters filter.Config) ([]types.FileEntry, int, error) {
	entries, err := s.Scan(root)
	if err != nil {
		return nil, 0, err
	}

	filtered, excluded := filter.Apply(entries, filters)
	return filtered, excluded, nil
}
