// Category trie storage layer tests: build/save/load round trips and
// predictive prefix search, the two things every higher layer depends
// on for correctness.
package textindex

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestBuildTrieSortsAndDeduplicates(t *testing.T) {
	keys := [][]byte{
		[]byte("banana"),
		[]byte("apple"),
		[]byte("banana"),
		[]byte("cherry"),
	}
	tr, err := buildTrie(keys)
	if err != nil {
		t.Fatalf("buildTrie: %v", err)
	}
	want := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
	if len(tr.keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(tr.keys), len(want))
	}
	for i := range want {
		if !bytes.Equal(tr.keys[i], want[i]) {
			t.Errorf("key %d = %q, want %q", i, tr.keys[i], want[i])
		}
	}
}

func TestBuildTrieEmpty(t *testing.T) {
	tr, err := buildTrie(nil)
	if err != nil {
		t.Fatalf("buildTrie(nil): %v", err)
	}
	if len(tr.keys) != 0 {
		t.Errorf("len(keys) = %d, want 0", len(tr.keys))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category.dat")

	keys := [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma")}
	tr, err := buildTrie(keys)
	if err != nil {
		t.Fatalf("buildTrie: %v", err)
	}
	if err := tr.save(path, ChecksumXXHash3, false); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := loadTrie(path)
	if err != nil {
		t.Fatalf("loadTrie: %v", err)
	}
	if len(loaded.keys) != len(tr.keys) {
		t.Fatalf("loaded %d keys, want %d", len(loaded.keys), len(tr.keys))
	}
	for i := range tr.keys {
		if !bytes.Equal(loaded.keys[i], tr.keys[i]) {
			t.Errorf("key %d = %q, want %q", i, loaded.keys[i], tr.keys[i])
		}
	}
}

func TestSaveLeavesNoTempFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category.dat")
	tr, _ := buildTrie([][]byte{[]byte("x")})
	if err := tr.save(path, ChecksumXXHash3, true); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file %s.tmp still present after save (stat err: %v)", path, err)
	}
	if _, err := loadTrie(path); err != nil {
		t.Fatalf("loadTrie after sync save: %v", err)
	}
}

func TestLoadTrieRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category.dat")
	data := []byte(`{"magic":"wrong","keyCount":0,"checksumAlg":1,"checksum":0,"compressedLen":0}` + "\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTrie(path); err == nil {
		t.Error("expected an error for a bad magic header")
	}
}

func TestLoadTrieRejectsChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category.dat")

	tr, _ := buildTrie([][]byte{[]byte("alpha")})
	if err := tr.save(path, ChecksumXXHash3, false); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Flip a byte in the compressed body, past the header line, to
	// simulate on-disk corruption.
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 || nl+1 >= len(data) {
		t.Fatal("unexpected file shape")
	}
	data[nl+1] ^= 0xFF
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadTrie(path); err == nil {
		t.Error("expected a checksum mismatch error")
	}
}

func TestPredictiveSearch(t *testing.T) {
	keys := [][]byte{
		[]byte("app"),
		[]byte("apple"),
		[]byte("application"),
		[]byte("banana"),
	}
	tr, err := buildTrie(keys)
	if err != nil {
		t.Fatalf("buildTrie: %v", err)
	}

	hits := tr.predictiveSearch([]byte("app"))
	if len(hits) != 3 {
		t.Fatalf("predictiveSearch(\"app\") returned %d hits, want 3", len(hits))
	}

	hits = tr.predictiveSearch([]byte("ban"))
	if len(hits) != 1 || !bytes.Equal(hits[0], []byte("banana")) {
		t.Errorf("predictiveSearch(\"ban\") = %v, want [banana]", hits)
	}

	hits = tr.predictiveSearch([]byte("zzz"))
	if len(hits) != 0 {
		t.Errorf("predictiveSearch(\"zzz\") = %v, want no hits", hits)
	}
}

func TestPredictiveSearchEmptyPrefixMatchesAll(t *testing.T) {
	keys := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	tr, _ := buildTrie(keys)
	hits := tr.predictiveSearch(nil)
	if len(hits) != 3 {
		t.Errorf("predictiveSearch(nil) returned %d hits, want 3", len(hits))
	}
}

// TestPredictiveSearchSortedOrder verifies hits come back in the trie's
// stored (sorted) order, which callers rely on for deterministic output.
func TestPredictiveSearchSortedOrder(t *testing.T) {
	keys := [][]byte{[]byte("car2"), []byte("car1"), []byte("car3")}
	tr, _ := buildTrie(keys)
	hits := tr.predictiveSearch([]byte("car"))
	if !slices.IsSortedFunc(hits, bytes.Compare) {
		t.Errorf("hits not sorted: %v", hits)
	}
}
