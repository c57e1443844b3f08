package dupes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadcoast/sik-sort/pkg/types"
)

func writeFile(t *testing.T, dir, name string, content []byte) types.FileEntry {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return types.FileEntry{Path: path, Name: name, Size: int64(len(content))}
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	if _, err := New("crc32"); err == nil {
		t.Error("expected error for unsupported algorithm")
	}
	for _, algo := range []string{"md5", "sha256", "MD5", "SHA256"} {
		if _, err := New(algo); err != nil {
			t.Errorf("algorithm %s should be accepted: %v", algo, err)
		}
	}
}

func TestComputeHash_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	entry := writeFile(t, tmpDir, "a.bin", bytes.Repeat([]byte("payload"), 1000))

	for _, algo := range []string{"md5", "sha256"} {
		d, err := New(algo)
		if err != nil {
			t.Fatal(err)
		}

		first, err := d.ComputeHash(entry.Path)
		if err != nil {
			t.Fatalf("ComputeHash failed: %v", err)
		}
		second, err := d.ComputeHash(entry.Path)
		if err != nil {
			t.Fatalf("ComputeHash failed: %v", err)
		}
		if first != second {
			t.Errorf("%s: repeat calls disagree: %s vs %s", algo, first, second)
		}
	}
}

func TestComputeHash_DistinctContent(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.bin", []byte("content A"))
	b := writeFile(t, tmpDir, "b.bin", []byte("content B"))

	d, _ := New("md5")
	ha, err := d.ComputeHash(a.Path)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := d.ComputeHash(b.Path)
	if err != nil {
		t.Fatal(err)
	}
	if ha == hb {
		t.Error("distinct content produced identical hashes")
	}
}

func TestComputeHash_MissingFile(t *testing.T) {
	d, _ := New("md5")
	if _, err := d.ComputeHash(filepath.Join(t.TempDir(), "gone.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFind_GroupsIdenticalContent(t *testing.T) {
	tmpDir := t.TempDir()
	content := bytes.Repeat([]byte("x"), 100)

	files := []types.FileEntry{
		writeFile(t, tmpDir, "one.dat", content),
		writeFile(t, tmpDir, "two.dat", content),
		writeFile(t, tmpDir, "three.dat", content),
		writeFile(t, tmpDir, "other.dat", []byte("different")),
	}

	d, _ := New("md5")
	groups := d.Find(files)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Paths) != 3 {
		t.Errorf("expected 3 members, got %d", len(groups[0].Paths))
	}
	// First-seen file is canonical.
	if filepath.Base(groups[0].Paths[0]) != "one.dat" {
		t.Errorf("expected one.dat canonical, got %s", groups[0].Paths[0])
	}

	if saved := SpaceSaved(groups); saved != 200 {
		t.Errorf("expected 200 bytes reclaimable, got %d", saved)
	}
}

func TestFind_NoDuplicates(t *testing.T) {
	tmpDir := t.TempDir()
	files := []types.FileEntry{
		writeFile(t, tmpDir, "a.dat", []byte("aaa")),
		writeFile(t, tmpDir, "b.dat", []byte("bbb")),
	}

	d, _ := New("sha256")
	if groups := d.Find(files); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestFind_SkipsUnreadableFiles(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("shared")
	files := []types.FileEntry{
		writeFile(t, tmpDir, "a.dat", content),
		writeFile(t, tmpDir, "b.dat", content),
		{Path: filepath.Join(tmpDir, "missing.dat"), Name: "missing.dat"},
	}

	d, _ := New("md5")
	groups := d.Find(files)
	if len(groups) != 1 || len(groups[0].Paths) != 2 {
		t.Errorf("unreadable file should be skipped, not fatal: %v", groups)
	}
}

func TestStats(t *testing.T) {
	tmpDir := t.TempDir()
	content := bytes.Repeat([]byte("y"), 50)
	files := []types.FileEntry{
		writeFile(t, tmpDir, "a.dat", content),
		writeFile(t, tmpDir, "b.dat", content),
		writeFile(t, tmpDir, "c.dat", content),
	}

	d, _ := New("md5")
	stats := Stats(d.Find(files))

	if stats.Groups != 1 {
		t.Errorf("expected 1 group, got %d", stats.Groups)
	}
	if stats.TotalDuplicates != 2 {
		t.Errorf("expected 2 duplicates, got %d", stats.TotalDuplicates)
	}
	if stats.SpaceSaved != 100 {
		t.Errorf("expected 100 bytes, got %d", stats.SpaceSaved)
	}
}
