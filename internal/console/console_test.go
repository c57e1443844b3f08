package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deadcoast/sik-sort/pkg/types"
)

func TestSink_FileSorted(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	sink.FileSorted("photo.jpg", types.CategoryImage, false)

	out := buf.String()
	if !strings.Contains(out, "photo.jpg") {
		t.Errorf("output should contain the filename: %q", out)
	}
	if !strings.Contains(out, "[IMG]") {
		t.Errorf("output should contain the category tag: %q", out)
	}
	if !strings.Contains(out, "img/") {
		t.Errorf("output should contain the destination folder: %q", out)
	}
	if strings.Contains(out, "DRY RUN") {
		t.Errorf("no dry-run prefix expected: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal writer must get no color codes: %q", out)
	}
}

func TestSink_DryRunPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewSink(&buf).FileSorted("notes.txt", types.CategoryMisc, true)

	if !strings.HasPrefix(buf.String(), "[DRY RUN] ") {
		t.Errorf("expected dry-run prefix: %q", buf.String())
	}
}

func TestSink_ErrorAndConflict(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	sink.ConflictResolved("dup.txt", "dup_1.txt")
	sink.FileError("bad.bin", "permission denied")

	out := buf.String()
	for _, want := range []string{"[CONFLICT]", "dup.txt", "dup_1.txt", "[ERROR]", "bad.bin", "permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestSink_PrintSummary(t *testing.T) {
	stats := types.NewSortingStats()
	stats.Record(types.CategoryImage, "", "big.jpg", 2048, false)
	stats.Record(types.CategoryMisc, "", "notes.txt", 10, true)
	stats.RecordError("bad.bin", types.FileError{Name: "bad.bin", Message: "unreadable"})

	var buf bytes.Buffer
	NewSink(&buf).PrintSummary(stats)

	out := buf.String()
	for _, want := range []string{"Total files:        2", "big.jpg", "Conflicts resolved: 1", "Errors:             1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
