// Package dupes finds byte-identical files by streaming content hashes.
package dupes

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/deadcoast/sik-sort/pkg/types"
)

// hashBufferSize keeps memory flat regardless of file size.
const hashBufferSize = 64 * 1024

// Detector groups files by content hash using a selectable algorithm.
type Detector struct {
	algorithm string
}

// New builds a detector. Algorithm selection is validated up front so an
// unsupported value fails before any file is read.
func New(algorithm string) (*Detector, error) {
	switch strings.ToLower(algorithm) {
	case "md5", "sha256":
		return &Detector{algorithm: strings.ToLower(algorithm)}, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
}

func (d *Detector) newHasher() hash.Hash {
	if d.algorithm == "sha256" {
		return sha256.New()
	}
	return md5.New()
}

// ComputeHash streams one file through the hash in fixed-size chunks and
// returns the hex digest.
func (d *Detector) ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := d.newHasher()
	buf := make([]byte, hashBufferSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Find hashes every file and returns the groups with at least two members,
// preserving insertion order within a group (first member is canonical) and
// first-seen order across groups. Unreadable files are skipped.
func (d *Detector) Find(files []types.FileEntry) []types.DuplicateGroup {
	byHash := make(map[string][]string)
	var order []string

	for _, f := range files {
		sum, err := d.ComputeHash(f.Path)
		if err != nil {
			continue
		}
		if _, seen := byHash[sum]; !seen {
			order = append(order, sum)
		}
		byHash[sum] = append(byHash[sum], f.Path)
	}

	var groups []types.DuplicateGroup
	for _, sum := range order {
		if paths := byHash[sum]; len(paths) > 1 {
			groups = append(groups, types.DuplicateGroup{Hash: sum, Paths: paths})
		}
	}
	return groups
}

// SpaceSaved totals the bytes reclaimable by keeping one copy per group. All
// members of a group are byte-identical, so the first member's size stands in
// for every duplicate.
func SpaceSaved(groups []types.DuplicateGroup) int64 {
	var total int64
	for _, g := range groups {
		info, err := os.Stat(g.Paths[0])
		if err != nil {
			continue
		}
		total += info.Size() * int64(len(g.Paths)-1)
	}
	return total
}

// Stats rolls a group list up into the summary the CLI reports.
func Stats(groups []types.DuplicateGroup) types.DuplicateStats {
	stats := types.DuplicateStats{
		Groups:     len(groups),
		SpaceSaved: SpaceSaved(groups),
	}
	for _, g := range groups {
		stats.TotalDuplicates += len(g.Paths) - 1
	}
	return stats
}
