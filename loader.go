// Index loader: opens the four category tries read-only and recovers
// the per-build offset width from the sentinel key.
package textindex

import (
	"fmt"
	"path/filepath"
)

// categoryState holds one category's loaded trie, if any.
type categoryState struct {
	trie  *Trie
	avail bool
}

// Index is a read-only, concurrency-safe view over a built text-search
// index. The zero value is not usable; construct with Open. There is no
// Closed state transition — an Index is simply discarded once no longer
// needed.
type Index struct {
	states [4]categoryState // indexed by Category
	width  int
	loaded bool
}

// Open loads the four category tries from dir, in the fixed order POI,
// Location, Region, Other. A category file that fails to open is
// recorded as unavailable rather than treated as fatal, unless all four
// fail. The offset width is recovered from whichever available trie
// holds the sentinel key.
func Open(dir string) (*Index, error) {
	idx := &Index{}

	availCount := 0
	for _, cat := range categories {
		path := filepath.Join(dir, cat.fileName())
		trie, err := loadTrie(path)
		if err != nil {
			idx.states[cat] = categoryState{avail: false}
			continue
		}
		idx.states[cat] = categoryState{trie: trie, avail: true}
		availCount++
	}

	if availCount == 0 {
		return nil, ErrNoCategoriesAvailable
	}

	width, err := resolveWidth(idx)
	if err != nil {
		return nil, err
	}

	idx.width = width
	idx.loaded = true
	return idx, nil
}

// resolveWidth scans available tries in category order for the sentinel
// key and parses the offset width from the first one found.
func resolveWidth(idx *Index) (int, error) {
	for _, cat := range categories {
		state := idx.states[cat]
		if !state.avail {
			continue
		}
		hits := state.trie.predictiveSearch([]byte{sentinelPrefix})
		if len(hits) == 0 {
			continue
		}
		width, err := parseWidth(hits[0])
		if err != nil {
			return 0, err
		}
		return width, nil
	}
	return 0, ErrMissingSentinel
}

// parseWidth parses the decimal ASCII digits following the 0x04 sentinel
// byte.
func parseWidth(key []byte) (int, error) {
	if len(key) < 2 || key[0] != sentinelPrefix {
		return 0, fmt.Errorf("%w: malformed sentinel", ErrIndexCorrupt)
	}
	n := 0
	for _, b := range key[1:] {
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("%w: non-decimal sentinel width", ErrIndexCorrupt)
		}
		n = n*10 + int(b-'0')
	}
	if n < minWidth || n > maxWidth {
		return 0, fmt.Errorf("%w: sentinel width %d out of range", ErrIndexCorrupt, n)
	}
	return n, nil
}
