// Package mover relocates single files with conflict-safe renaming.
package mover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mover performs rename-based moves, never overwriting. In dry-run mode no
// filesystem mutation happens, but names resolved during the run are claimed
// in memory so a simulated run resolves exactly the conflicts a real run
// would.
type Mover struct {
	dryRun  bool
	claimed map[string]bool
}

func New(dryRun bool) *Mover {
	return &Mover{
		dryRun:  dryRun,
		claimed: make(map[string]bool),
	}
}

// exists reports whether dest is taken, either on disk or by an earlier move
// in this run. In a real run the claim set is redundant (the earlier move put
// a file on disk) but keeping it unconditional keeps both paths identical.
func (m *Mover) exists(dest string) bool {
	if m.claimed[dest] {
		return true
	}
	_, err := os.Stat(dest)
	return !os.IsNotExist(err)
}

// EnsureDir lazily creates a destination folder. No-op when it already
// exists, suppressed entirely in dry-run.
func (m *Mover) EnsureDir(dir string) error {
	if m.dryRun {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// Move relocates src to dest. If dest is taken, a numerically suffixed
// alternative is probed until a free name is found. Returns the path actually
// used and whether a conflict was resolved.
func (m *Mover) Move(src, dest string) (string, bool, error) {
	conflict := false
	if m.exists(dest) {
		dir := filepath.Dir(dest)
		dest = filepath.Join(dir, m.UniqueName(dir, filepath.Base(dest)))
		conflict = true
	}

	if !m.dryRun {
		if err := os.Rename(src, dest); err != nil {
			return "", false, err
		}
	}
	m.claimed[dest] = true

	return dest, conflict, nil
}

// UniqueName probes stem_1.ext, stem_2.ext, ... until a name absent from dir
// is found. Sequential with no gap-filling, so the result is deterministic
// for a given directory snapshot.
func (m *Mover) UniqueName(dir, filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if !m.exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}
