// Package filter narrows a scanned file list through ordered include and
// exclude stages.
package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/deadcoast/sik-sort/pkg/types"
)

// Config holds the four stages. Patterns are shell globs matched against the
// filename only; extensions are case-insensitive dotted suffixes. An empty
// stage is a no-op.
type Config struct {
	IncludePatterns   []string
	IncludeExtensions []string
	ExcludePatterns   []string
	ExcludeExtensions []string
}

// Empty reports whether no stage is configured.
func (c Config) Empty() bool {
	return len(c.IncludePatterns) == 0 && len(c.IncludeExtensions) == 0 &&
		len(c.ExcludePatterns) == 0 && len(c.ExcludeExtensions) == 0
}

// Apply runs the stages in fixed order: include patterns, include extensions,
// exclude patterns, exclude extensions. Each stage only narrows the working
// set. Returns the survivors and the count of files removed.
func Apply(files []types.FileEntry, cfg Config) ([]types.FileEntry, int) {
	total := len(files)
	filtered := files

	if len(cfg.IncludePatterns) > 0 {
		filtered = keep(filtered, func(f types.FileEntry) bool {
			return matchesAny(f.Name, cfg.IncludePatterns)
		})
	}

	if len(cfg.IncludeExtensions) > 0 {
		filtered = keep(filtered, func(f types.FileEntry) bool {
			return matchesExtension(f.Name, cfg.IncludeExtensions)
		})
	}

	if len(cfg.ExcludePatterns) > 0 {
		filtered = keep(filtered, func(f types.FileEntry) bool {
			return !matchesAny(f.Name, cfg.ExcludePatterns)
		})
	}

	if len(cfg.ExcludeExtensions) > 0 {
		filtered = keep(filtered, func(f types.FileEntry) bool {
			return !matchesExtension(f.Name, cfg.ExcludeExtensions)
		})
	}

	return filtered, total - len(filtered)
}

func keep(files []types.FileEntry, pred func(types.FileEntry) bool) []types.FileEntry {
	out := make([]types.FileEntry, 0, len(files))
	for _, f := range files {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		// Malformed patterns never match rather than failing the stage.
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func matchesExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range extensions {
		want = strings.ToLower(want)
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == want {
			return true
		}
	}
	return false
}
