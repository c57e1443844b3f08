// Package sorter drives the scan, classify, move loop for one directory tree.
package sorter

import (
	"path/filepath"
	"time"

	"github.com/deadcoast/sik-sort/internal/classify"
	"github.com/deadcoast/sik-sort/internal/config"
	"github.com/deadcoast/sik-sort/internal/dupes"
	"github.com/deadcoast/sik-sort/internal/filter"
	"github.com/deadcoast/sik-sort/internal/mover"
	"github.com/deadcoast/sik-sort/internal/oplog"
	"github.com/deadcoast/sik-sort/internal/scanner"
	"github.com/deadcoast/sik-sort/pkg/types"
)

// Sorter orchestrates one sort run. A single per-file failure never aborts
// the run; it is recorded and the loop moves on.
type Sorter struct {
	cfg      *config.Config
	mode     types.SortMode
	mv       *mover.Mover
	dates    *classify.DateClassifier
	detector *dupes.Detector
	sink     EventSink
	progress ProgressFunc
	log      *oplog.Session
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithEventSink installs the presentation collaborator.
func WithEventSink(sink EventSink) Option {
	return func(s *Sorter) { s.sink = sink }
}

// WithProgress installs a progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Sorter) { s.progress = fn }
}

// WithOperationLog attaches a log session that receives one record per
// successful move.
func WithOperationLog(session *oplog.Session) Option {
	return func(s *Sorter) { s.log = session }
}

// New builds a Sorter for a validated config. Fatal preconditions (thresholds,
// hash algorithm, date format) are assumed checked by config.Validate; the
// hash algorithm is re-checked here because the detector needs it.
func New(cfg *config.Config, opts ...Option) (*Sorter, error) {
	s := &Sorter{
		cfg:   cfg,
		mode:  cfg.Mode(),
		mv:    mover.New(cfg.DryRun),
		dates: classify.NewDateClassifier(cfg.DateMode == config.DateModeCreation, cfg.DateEXIF, cfg.DateFormat),
		sink:  noopSink{},
	}

	if s.mode == types.ModeDuplicate {
		detector, err := dupes.New(cfg.HashAlgorithm)
		if err != nil {
			return nil, err
		}
		s.detector = detector
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run sorts the tree under root and returns the run's statistics. The
// returned error covers run-level failures (unreachable root); per-file
// failures land in the statistics instead.
func (s *Sorter) Run(root string) (*types.SortingStats, error) {
	start := time.Now()
	stats := types.NewSortingStats()

	files, excluded, err := s.scan(root)
	if err != nil {
		return nil, err
	}
	stats.ExcludedByFilter = excluded
	s.sink.ScanComplete(len(files))

	duplicates := s.markDuplicates(files)

	for i, entry := range files {
		if err := s.processOne(root, entry, duplicates[entry.Path], stats); err != nil {
			stats.RecordError(entry.Name, err)
			s.sink.FileError(entry.Name, err.Error())
		}
		if s.progress != nil {
			s.progress(i+1, len(files))
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// scan enumerates candidate files, excluding this mode's own destination
// folders so a re-run never re-ingests already-placed files.
func (s *Sorter) scan(root string) ([]types.FileEntry, int, error) {
	sc := scanner.New(excludedDirs(s.mode))
	switch s.mode {
	case types.ModeDate, types.ModeArchiveFlat, types.ModeArchiveType:
		sc.SetExcludeFunc(s.dates.IsBucketName)
	}

	return sc.ScanWithFilters(root, filter.Config{
		IncludePatterns:   s.cfg.Filters.IncludePatterns,
		IncludeExtensions: s.cfg.Filters.IncludeExtensions,
		ExcludePatterns:   s.cfg.Filters.ExcludePatterns,
		ExcludeExtensions: s.cfg.Filters.ExcludeExtensions,
	})
}

// markDuplicates returns the set of non-canonical paths in duplicate mode.
// The first member of each hash group stays canonical and sorts normally.
func (s *Sorter) markDuplicates(files []types.FileEntry) map[string]bool {
	if s.detector == nil {
		return nil
	}

	marked := make(map[string]bool)
	for _, group := range s.detector.Find(files) {
		for _, path := range group.Paths[1:] {
			marked[path] = true
		}
	}
	return marked
}

// processOne runs classify, ensure-folder, move, record for a single file.
func (s *Sorter) processOne(root string, entry types.FileEntry, isDup bool, stats *types.SortingStats) error {
	cf := classified{
		entry:     entry,
		category:  classify.ByType(entry.Path),
		duplicate: isDup,
	}

	switch s.mode {
	case types.ModeSize:
		size, err := classify.BySize(entry.Path, s.cfg.Thresholds)
		if err != nil {
			return err
		}
		cf.bucket = string(size)
	case types.ModeDate, types.ModeArchiveFlat, types.ModeArchiveType:
		bucket, err := s.dates.Bucket(entry.Path)
		if err != nil {
			return err
		}
		cf.bucket = bucket
	}

	dest := filepath.Join(root, relativeDest(s.mode, cf))

	if err := s.mv.EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}

	actual, conflict, err := s.mv.Move(entry.Path, dest)
	if err != nil {
		return err
	}
	if conflict {
		s.sink.ConflictResolved(entry.Name, filepath.Base(actual))
	}

	s.record(cf, actual, conflict, stats)
	s.sink.FileSorted(entry.Name, cf.category, s.cfg.DryRun)
	return nil
}

// record folds the outcome into statistics and the operation log. Routed
// duplicates are counted separately and do not touch the main category
// counters.
func (s *Sorter) record(cf classified, dest string, conflict bool, stats *types.SortingStats) {
	label := string(cf.category)
	if cf.duplicate {
		label = DuplicatesDir
		stats.Duplicates++
		if conflict {
			stats.ConflictsResolved++
		}
	} else {
		stats.Record(cf.category, cf.bucket, cf.entry.Name, cf.entry.Size, conflict)
	}

	if s.log != nil {
		s.log.Append(types.SortOperation{
			Source:           cf.entry.Path,
			Destination:      dest,
			Category:         label,
			Timestamp:        time.Now(),
			ConflictResolved: conflict,
		})
	}
}
