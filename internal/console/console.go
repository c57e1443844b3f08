// Package console renders sorter events and run summaries for a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/deadcoast/sik-sort/pkg/types"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Sink writes per-file events to a writer with category-colored tags.
// Implements the sorter's EventSink. Color is enabled only when the writer is
// a real terminal.
type Sink struct {
	out      io.Writer
	colorize bool
}

// NewSink builds a sink for w. Passing os.Stdout gets TTY-detected color;
// any other writer stays plain.
func NewSink(w io.Writer) *Sink {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) && !color.NoColor
	}
	return &Sink{out: w, colorize: colorize}
}

var categoryColors = map[types.FileCategory]color.Attribute{
	types.CategoryImage:   color.FgGreen,
	types.CategoryVideo:   color.FgBlue,
	types.CategoryArchive: color.FgYellow,
	types.CategoryMisc:    color.FgWhite,
}

func (s *Sink) paint(attr color.Attribute, text string) string {
	if !s.colorize {
		return text
	}
	return color.New(attr).Sprint(text)
}

// FileSorted prints "[IMG] photo.jpg -> img/" with a [DRY RUN] prefix when
// simulating.
func (s *Sink) FileSorted(filename string, category types.FileCategory, dryRun bool) {
	prefix := ""
	if dryRun {
		prefix = "[DRY RUN] "
	}
	tag := s.paint(categoryColors[category], "["+strings.ToUpper(string(category))+"]")
	fmt.Fprintf(s.out, "%s%s %s -> %s/\n", prefix, tag, filename, category)
}

func (s *Sink) ScanComplete(fileCount int) {
	fmt.Fprintf(s.out, "\nScan complete: found %d file(s) to process\n\n", fileCount)
}

func (s *Sink) ConflictResolved(originalName, newName string) {
	tag := s.paint(color.FgYellow, "[CONFLICT]")
	fmt.Fprintf(s.out, "%s %s -> %s\n", tag, originalName, newName)
}

func (s *Sink) FileError(filename, message string) {
	tag := s.paint(color.FgRed, "[ERROR]")
	fmt.Fprintf(s.out, "%s %s: %s\n", tag, filename, message)
}

// PrintSummary renders the end-of-run statistics table.
func (s *Sink) PrintSummary(stats *types.SortingStats) {
	fmt.Fprintln(s.out, "\n=== sik-sort summary ===")
	fmt.Fprintf(s.out, "Total files:        %d\n", stats.TotalFiles)

	for _, c := range types.Categories() {
		cs := stats.PerCategory[c]
		line := fmt.Sprintf("%s files:          %d", strings.ToUpper(string(c)), cs.Count)
		if cs.Count > 0 {
			line += fmt.Sprintf("  (%s", humanize.IBytes(uint64(cs.Bytes)))
			line += fmt.Sprintf(", largest %s)", cs.LargestName)
		}
		fmt.Fprintln(s.out, line)
	}

	if len(stats.Buckets) > 0 {
		fmt.Fprintln(s.out, "Buckets:")
		for bucket, count := range stats.Buckets {
			fmt.Fprintf(s.out, "  %s: %d\n", bucket, count)
		}
	}

	if stats.Duplicates > 0 {
		fmt.Fprintf(s.out, "Duplicates routed:  %d\n", stats.Duplicates)
	}
	if stats.ExcludedByFilter > 0 {
		fmt.Fprintf(s.out, "Filtered out:       %d\n", stats.ExcludedByFilter)
	}
	fmt.Fprintf(s.out, "Conflicts resolved: %d\n", stats.ConflictsResolved)
	fmt.Fprintf(s.out, "Errors:             %d\n", len(stats.Errors))
	fmt.Fprintf(s.out, "Duration:           %s\n", stats.Duration.Round(time.Millisecond))
	fmt.Fprintln(s.out, "========================")
}
