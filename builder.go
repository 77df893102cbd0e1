// Import pipeline entry point: wires the offset-width planner, the
// keyset builder, and the trie builder into the single Build operation.
package textindex

import (
	"fmt"
	"path/filepath"
)

// BuildConfig controls build-time behaviour. The zero value is a usable
// default (xxh3 checksums, no fsync).
type BuildConfig struct {
	// ChecksumAlgorithm selects the trie-file body checksum (checksum.go).
	// Zero defaults to ChecksumXXHash3.
	ChecksumAlgorithm int

	// SyncWrites requests an fsync on each category file before the
	// atomic rename into place.
	SyncWrites bool
}

func (c BuildConfig) resolved() BuildConfig {
	if c.ChecksumAlgorithm == 0 {
		c.ChecksumAlgorithm = ChecksumXXHash3
	}
	return c
}

// Build runs the full import pipeline: plan the offset width from the
// three object files, route every named object into one of four
// category keysets, and persist one trie per category into destDir.
//
// A failed category build aborts the import; any already-written
// category files are left on disk as-is — cleanup is the caller's
// responsibility. Concurrent Build calls on the same destDir serialise
// on an OS-level lock; they do not corrupt each other's output.
func Build(destDir, nodesPath, waysPath, areasPath string, cfg TypeConfig, buildCfg BuildConfig) error {
	buildCfg = buildCfg.resolved()

	lock, err := acquireBuildLock(filepath.Join(destDir, ".textindex-build.lock"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildLocked, err)
	}
	defer lock.release()

	width, err := planWidth(nodesPath, waysPath, areasPath)
	if err != nil {
		return err
	}

	sets, err := buildKeysets(nodesPath, waysPath, areasPath, cfg, width)
	if err != nil {
		return err
	}

	sentinel := sentinelKey(width)

	for _, cat := range categories {
		set := sets[cat]
		set.keys = append(set.keys, sentinel)

		trie, err := buildTrie(set.keys)
		if err != nil {
			return fmt.Errorf("%w: category %s: %v", ErrBuildFailed, cat, err)
		}

		path := filepath.Join(destDir, cat.fileName())
		if err := trie.save(path, buildCfg.ChecksumAlgorithm, buildCfg.SyncWrites); err != nil {
			return fmt.Errorf("category %s: %w", cat, err)
		}
	}

	return nil
}
