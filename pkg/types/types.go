// Package types defines core data structures shared across sik-sort modules.
package types

import (
	"time"
)

// FileCategory is the type bucket a file is routed to. The string value is
// also the destination folder name.
type FileCategory string

const (
	CategoryImage   FileCategory = "img"
	CategoryVideo   FileCategory = "vid"
	CategoryArchive FileCategory = "arc"
	CategoryMisc    FileCategory = "msk"
)

// Categories lists all categories in routing order.
func Categories() []FileCategory {
	return []FileCategory{CategoryImage, CategoryVideo, CategoryArchive, CategoryMisc}
}

// SizeCategory buckets a file by byte length. The string value is the
// destination folder name in size-hierarchy mode.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// SortMode selects the destination-path derivation used by a run.
type SortMode string

const (
	// ModePlain: root/<category>/<name>
	ModePlain SortMode = "plain"
	// ModeSize: root/<size>/<category>/<name>
	ModeSize SortMode = "size"
	// ModeDate: root/<bucket>/<category>/<name>
	ModeDate SortMode = "date"
	// ModeArchiveFlat: root/<bucket>/<name>
	ModeArchiveFlat SortMode = "archive"
	// ModeArchiveType: root/<bucket>/<category>/<name>
	ModeArchiveType SortMode = "archive-type"
	// ModeDuplicate: duplicates to root/duplicates/, the rest like plain.
	ModeDuplicate SortMode = "duplicates"
)

// FileEntry represents a scanned file with the metadata the sorter needs.
type FileEntry struct {
	// Path is the path to the source file.
	Path string
	// Name is the base filename.
	Name string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the file modification time.
	ModTime time.Time
}

// SortOperation is one record per successfully processed file. Immutable once
// created; appended to the run's operation log in processing order.
type SortOperation struct {
	Source           string    `json:"source"`
	Destination      string    `json:"destination"`
	Category         string    `json:"category"`
	Timestamp        time.Time `json:"timestamp"`
	ConflictResolved bool      `json:"conflict_resolved"`
}

// FileError is the recoverable per-file error class. The orchestrator records
// it and continues with the next file.
type FileError struct {
	Name    string
	Message string
}

func (e FileError) Error() string {
	return e.Name + ": " + e.Message
}

// CategoryStats accumulates per-category counters for one run.
type CategoryStats struct {
	Count       int
	Bytes       int64
	LargestName string
	LargestSize int64
}

// SortingStats is the mutable accumulator for one sort run. Created empty at
// orchestration start, mutated once per processed file, read-only afterwards.
type SortingStats struct {
	TotalFiles        int
	PerCategory       map[FileCategory]*CategoryStats
	Buckets           map[string]int
	ConflictsResolved int
	Duplicates        int
	ExcludedByFilter  int
	Errors            []FileError
	Duration          time.Duration
}

// NewSortingStats returns an empty accumulator with all categories present.
func NewSortingStats() *SortingStats {
	per := make(map[FileCategory]*CategoryStats, 4)
	for _, c := range Categories() {
		per[c] = &CategoryStats{}
	}
	return &SortingStats{
		PerCategory: per,
		Buckets:     make(map[string]int),
	}
}

// Record folds one successfully moved file into the accumulator. bucket is
// empty outside size/date modes.
func (s *SortingStats) Record(category FileCategory, bucket, name string, size int64, conflict bool) {
	s.TotalFiles++
	if conflict {
		s.ConflictsResolved++
	}
	if bucket != "" {
		s.Buckets[bucket]++
	}
	cs := s.PerCategory[category]
	cs.Count++
	cs.Bytes += size
	if cs.Count == 1 || size > cs.LargestSize {
		cs.LargestName = name
		cs.LargestSize = size
	}
}

// RecordError appends a recoverable per-file error.
func (s *SortingStats) RecordError(name string, err error) {
	s.Errors = append(s.Errors, FileError{Name: name, Message: err.Error()})
}

// DuplicateGroup maps a content hash to the ordered list of paths sharing it.
// The first path in insertion order is the canonical copy.
type DuplicateGroup struct {
	Hash  string
	Paths []string
}

// DuplicateStats summarizes a duplicate-detection pass.
type DuplicateStats struct {
	Groups          int
	TotalDuplicates int
	SpaceSaved      int64
}
