// Enumeration tests.
package textindex

import (
	"path/filepath"
	"testing"
)

func TestAllYieldsEveryEntryExceptSentinel(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.dat")
	if err := WriteNodeFile(nodesPath, []NodeRecord{
		{TypeID: 1, Name: "Alpha"},
		{TypeID: 1, Name: "Beta"},
	}); err != nil {
		t.Fatal(err)
	}

	cfg := NewTypeConfig([]typeFlags{{ID: 1, POI: true}})
	destDir := t.TempDir()
	if err := Build(destDir, nodesPath, filepath.Join(dir, "ways.dat"), filepath.Join(dir, "areas.dat"), cfg, BuildConfig{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	idx, err := Open(destDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var texts []string
	for entry, err := range idx.All(CategoryPOI) {
		if err != nil {
			t.Fatalf("All: %v", err)
		}
		texts = append(texts, entry.Text)
	}

	if len(texts) != 2 {
		t.Fatalf("got %d entries, want 2 (sentinel must be excluded)", len(texts))
	}
}

func TestAllOnEmptyCategoryYieldsNothing(t *testing.T) {
	dir := t.TempDir()
	destDir := t.TempDir()
	cfg := NewTypeConfig(nil)
	if err := Build(destDir,
		filepath.Join(dir, "nodes.dat"),
		filepath.Join(dir, "ways.dat"),
		filepath.Join(dir, "areas.dat"),
		cfg, BuildConfig{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	idx, err := Open(destDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	count := 0
	for range idx.All(CategoryPOI) {
		count++
	}
	if count != 0 {
		t.Errorf("got %d entries from an empty-but-available category, want 0", count)
	}
}

func TestAllOnUnloadedIndexYieldsError(t *testing.T) {
	var idx Index
	sawErr := false
	for _, err := range idx.All(CategoryPOI) {
		if err != nil {
			sawErr = true
		}
	}
	if !sawErr {
		t.Error("expected All to yield ErrNotLoaded on an unloaded Index")
	}
}

func TestAllStopsWhenCallerBreaks(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.dat")
	if err := WriteNodeFile(nodesPath, []NodeRecord{
		{TypeID: 1, Name: "Alpha"},
		{TypeID: 1, Name: "Beta"},
		{TypeID: 1, Name: "Gamma"},
	}); err != nil {
		t.Fatal(err)
	}
	cfg := NewTypeConfig([]typeFlags{{ID: 1, POI: true}})
	destDir := t.TempDir()
	if err := Build(destDir, nodesPath, filepath.Join(dir, "ways.dat"), filepath.Join(dir, "areas.dat"), cfg, BuildConfig{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	idx, err := Open(destDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	count := 0
	for range idx.All(CategoryPOI) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("got %d entries before break, want exactly 1", count)
	}
}
