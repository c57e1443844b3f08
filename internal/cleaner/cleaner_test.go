package cleaner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755)
	os.MkdirAll(filepath.Join(tmpDir, "full"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "full", "file.txt"), []byte("x"), 0644)

	empty, err := FindEmpty(tmpDir, nil)
	if err != nil {
		t.Fatalf("FindEmpty failed: %v", err)
	}
	if len(empty) != 1 || filepath.Base(empty[0]) != "empty" {
		t.Errorf("expected [empty], got %v", empty)
	}
}

func TestFindEmpty_PreservedNames(t *testing.T) {
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "img"), 0755)
	os.MkdirAll(filepath.Join(tmpDir, "leftover"), 0755)

	empty, err := FindEmpty(tmpDir, []string{"img"})
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 1 || filepath.Base(empty[0]) != "leftover" {
		t.Errorf("preserved name must not be reported: %v", empty)
	}
}

func TestFindEmpty_RootNeverReported(t *testing.T) {
	tmpDir := t.TempDir()

	empty, err := FindEmpty(tmpDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("empty root must not be reported: %v", empty)
	}
}

func TestRemove(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	os.MkdirAll(a, 0755)
	os.MkdirAll(b, 0755)
	os.WriteFile(filepath.Join(b, "f.txt"), []byte("x"), 0644)

	// b is non-empty and the third entry is already gone; both are skipped.
	removed := Remove([]string{a, b, filepath.Join(tmpDir, "ghost")})
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
}

func TestSweep_NestedEmptyDirs(t *testing.T) {
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "x", "y", "z"), 0755)
	os.MkdirAll(filepath.Join(tmpDir, "img"), 0755)

	removed, err := Sweep(tmpDir, []string{"img"})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "x")); !os.IsNotExist(err) {
		t.Error("x should be gone after iterative cleanup")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "img")); err != nil {
		t.Error("preserved img folder should survive even when empty")
	}
}

func TestFindEmpty_SinglePassOnly(t *testing.T) {
	// One pass reports only the innermost dir; the parent becomes empty only
	// after removal. Iteration policy belongs to the caller.
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "x", "y"), 0755)

	empty, err := FindEmpty(tmpDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 1 || filepath.Base(empty[0]) != "y" {
		t.Errorf("single pass should report only y, got %v", empty)
	}
}
