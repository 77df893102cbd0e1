// Enumeration: dump every object entry of one category trie, in trie
// emission order, as a push iterator.
package textindex

import (
	"fmt"
	"iter"
)

// Entry is one decoded object entry yielded by All.
type Entry struct {
	Text string
	Ref  ObjectRef
}

// All yields every object entry stored in cat's trie, skipping the
// sentinel key. Yields nothing if the category is unavailable; on an
// index that has not been loaded it yields a single ErrNotLoaded.
func (idx *Index) All(cat Category) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if !idx.loaded {
			yield(Entry{}, ErrNotLoaded)
			return
		}

		state := idx.states[cat]
		if !state.avail {
			return
		}

		for _, key := range state.trie.predictiveSearch(nil) {
			if len(key) > 0 && key[0] == sentinelPrefix {
				continue
			}

			text, kind, offset, err := decode(key, idx.width)
			if err != nil {
				if !yield(Entry{}, fmt.Errorf("%w: %v", ErrIndexCorrupt, err)) {
					return
				}
				continue
			}

			if !yield(Entry{Text: text, Ref: ObjectRef{Kind: kind, Offset: offset}}, nil) {
				return
			}
		}
	}
}
