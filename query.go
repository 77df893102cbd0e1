// Query engine: resolves a text prefix to the set of typed object
// references sharing that prefix, grouped by display text.
package textindex

import "fmt"

// SearchFlags selects which categories participate in a Search call.
type SearchFlags struct {
	IncludePOI      bool
	IncludeLocation bool
	IncludeRegion   bool
	IncludeOther    bool
}

// SearchResult groups every object reference sharing one display text.
// Results are returned as a slice rather than a map so that first-seen
// insertion order of distinct texts is preserved — Go map iteration
// order is unspecified, so a map could not honour that guarantee.
type SearchResult struct {
	Text string
	Refs []ObjectRef
}

// Search executes a prefix search across the selected, available
// category tries and groups hits by display text. An empty query
// returns an empty result and succeeds. Categories are visited in the
// fixed order POI, Location, Region, Other; within one category,
// hit order is whatever the trie yields.
//
// Search performs no ranking and no truncation; callers apply their own
// display caps.
func (idx *Index) Search(query string, flags SearchFlags) ([]SearchResult, error) {
	if !idx.loaded {
		return nil, ErrNotLoaded
	}
	if query == "" {
		return nil, nil
	}

	include := [4]bool{flags.IncludePOI, flags.IncludeLocation, flags.IncludeRegion, flags.IncludeOther}

	index := make(map[string]int, 8)
	var results []SearchResult

	qbytes := []byte(query)

	for _, cat := range categories {
		if !include[cat] {
			continue
		}
		state := idx.states[cat]
		if !state.avail {
			continue
		}

		hits := state.trie.predictiveSearch(qbytes)
		for _, key := range hits {
			if len(key) > 0 && key[0] == sentinelPrefix {
				continue // not an object key
			}

			text, kind, offset, err := decode(key, idx.width)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIndexCorrupt, err)
			}

			ref := ObjectRef{Kind: kind, Offset: offset}
			if pos, ok := index[text]; ok {
				results[pos].Refs = append(results[pos].Refs, ref)
			} else {
				index[text] = len(results)
				results = append(results, SearchResult{Text: text, Refs: []ObjectRef{ref}})
			}
		}
	}

	return results, nil
}
