package sorter

import (
	"github.com/deadcoast/sik-sort/pkg/types"
)

// EventSink receives per-file events as the run progresses. The sorter only
// produces event data; rendering belongs to the sink. All calls happen on the
// run's goroutine, in processing order.
type EventSink interface {
	// FileSorted fires once per successfully processed file.
	FileSorted(filename string, category types.FileCategory, dryRun bool)
	// ScanComplete fires after scanning and filtering, before processing.
	ScanComplete(fileCount int)
	// ConflictResolved fires when a destination collision forced a rename.
	ConflictResolved(originalName, newName string)
	// FileError fires when one file fails; the run continues.
	FileError(filename, message string)
}

// ProgressFunc observes the processing loop, invoked synchronously after each
// file.
type ProgressFunc func(current, total int)

type noopSink struct{}

func (noopSink) FileSorted(string, types.FileCategory, bool) {}
func (noopSink) ScanComplete(int)                            {}
func (noopSink) ConflictResolved(string, string)             {}
func (noopSink) FileError(string, string)                    {}
