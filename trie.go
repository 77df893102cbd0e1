// Category trie storage layer: an immutable, prefix-queryable store of
// byte strings, persisted as a single file.
//
// There is no off-the-shelf succinct LOUDS/MARISA trie in play here
// (see DESIGN.md), so the core build/save/load/search logic is a
// from-scratch sorted, deduplicated array of byte strings with
// binary-search range lookup. The serialised body is zstd-compressed
// and checksummed so the on-disk form stays compact and
// self-verifying, and is written via a temp-file-then-rename so a
// crash mid-save never leaves a half-written category file.
package textindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder, both documented safe for concurrent use.
// Allocated once since zstd encoder/decoder construction is expensive;
// builds happen rarely but may persist many category files per run.
var (
	trieZstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	trieZstdDecoder, _ = zstd.NewReader(nil)
)

// trieMagic identifies a category trie file.
const trieMagic = "txtrie01"

// trieHeader is the JSON header written at the start of every category
// file, before the compressed key body.
type trieHeader struct {
	Magic         string `json:"magic"`
	KeyCount      int    `json:"keyCount"`
	ChecksumAlg   int    `json:"checksumAlg"`
	Checksum      uint64 `json:"checksum"`
	CompressedLen int    `json:"compressedLen"`
}

// Trie is an immutable sorted set of byte strings supporting predictive
// prefix search. The zero value is not usable; construct via buildTrie
// or loadTrie.
type Trie struct {
	keys [][]byte // sorted, deduplicated, owned
}

// buildTrie constructs a Trie from a multiset of keys, sorting and
// collapsing duplicates.
func buildTrie(keys [][]byte) (*Trie, error) {
	if keys == nil {
		keys = [][]byte{}
	}
	sorted := make([][]byte, len(keys))
	copy(sorted, keys)

	slices.SortFunc(sorted, func(a, b []byte) int {
		return bytes.Compare(a, b)
	})

	deduped := sorted[:0]
	for i, k := range sorted {
		if i > 0 && bytes.Equal(k, deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, k)
	}

	return &Trie{keys: deduped}, nil
}

// save persists the trie to path atomically: write to path+".tmp", then
// rename into place. checksumAlg selects the body-integrity algorithm
// (checksum.go); sync requests an fsync before the rename.
func (t *Trie) save(path string, checksumAlg int, sync bool) error {
	var body bytes.Buffer
	for _, key := range t.keys {
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(key)))
		body.Write(lenBuf[:])
		body.Write(key)
	}

	compressed := trieZstdEncoder.EncodeAll(body.Bytes(), nil)

	hdr := trieHeader{
		Magic:         trieMagic,
		KeyCount:      len(t.keys),
		ChecksumAlg:   checksumAlg,
		Checksum:      checksum(checksumAlg, compressed),
		CompressedLen: len(compressed),
	}
	hdrBytes, err := json.Marshal(&hdr)
	if err != nil {
		return fmt.Errorf("%w: encode header: %v", ErrWriteFailed, err)
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	writeErr := func() error {
		if _, err := f.Write(hdrBytes); err != nil {
			return err
		}
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return err
		}
		if _, err := f.Write(compressed); err != nil {
			return err
		}
		if sync {
			return f.Sync()
		}
		return nil
	}()
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename: %v", ErrWriteFailed, err)
	}
	return nil
}

// loadTrie opens and parses a category file written by save.
func loadTrie(path string) (*Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return nil, fmt.Errorf("%w: %s: missing header terminator", ErrIndexCorrupt, filepath.Base(path))
	}

	var hdr trieHeader
	if err := json.Unmarshal(data[:nl], &hdr); err != nil {
		return nil, fmt.Errorf("%w: %s: bad header: %v", ErrIndexCorrupt, filepath.Base(path), err)
	}
	if hdr.Magic != trieMagic {
		return nil, fmt.Errorf("%w: %s: bad magic", ErrIndexCorrupt, filepath.Base(path))
	}

	compressed := data[nl+1:]
	if len(compressed) != hdr.CompressedLen {
		return nil, fmt.Errorf("%w: %s: truncated body", ErrIndexCorrupt, filepath.Base(path))
	}
	if got := checksum(hdr.ChecksumAlg, compressed); got != hdr.Checksum {
		return nil, fmt.Errorf("%w: %s: checksum mismatch", ErrIndexCorrupt, filepath.Base(path))
	}

	body, err := trieZstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: decompress: %v", ErrIndexCorrupt, filepath.Base(path), err)
	}

	keys := make([][]byte, 0, hdr.KeyCount)
	for pos := 0; pos < len(body); {
		if pos+4 > len(body) {
			return nil, fmt.Errorf("%w: %s: truncated key length", ErrIndexCorrupt, filepath.Base(path))
		}
		klen := int(binary.LittleEndian.Uint32(body[pos : pos+4]))
		pos += 4
		if pos+klen > len(body) {
			return nil, fmt.Errorf("%w: %s: truncated key", ErrIndexCorrupt, filepath.Base(path))
		}
		key := make([]byte, klen)
		copy(key, body[pos:pos+klen])
		keys = append(keys, key)
		pos += klen
	}
	if len(keys) != hdr.KeyCount {
		return nil, fmt.Errorf("%w: %s: key count mismatch", ErrIndexCorrupt, filepath.Base(path))
	}

	return &Trie{keys: keys}, nil
}

// predictiveSearch returns every stored key beginning with prefix, in
// sorted (and therefore deterministic-per-build) order. An empty prefix
// matches every key.
func (t *Trie) predictiveSearch(prefix []byte) [][]byte {
	lo, hi := 0, len(t.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if bytes.Compare(t.keys[mid], prefix) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	var hits [][]byte
	for i := lo; i < len(t.keys) && bytes.HasPrefix(t.keys[i], prefix); i++ {
		hits = append(hits, t.keys[i])
	}
	return hits
}
