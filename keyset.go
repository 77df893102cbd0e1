// Keyset builder: streams object files and routes each (name, offset)
// pair into one of four category keysets.
package textindex

// keyset accumulates the encoded trie keys for one category during a
// build. The bloom filter is a cheap pre-check (dedupe.go) that lets most
// unique keys skip the exact membership probe.
type keyset struct {
	filter *dedupeFilter
	seen   map[string]struct{}
	keys   [][]byte
}

func newKeyset() *keyset {
	return &keyset{filter: newDedupeFilter(), seen: make(map[string]struct{})}
}

// append adds an encoded key to the keyset, dropping exact duplicates.
// The exact set is only probed when the bloom filter says the key may
// have been seen; since the filter has no false negatives, every
// duplicate is caught.
func (k *keyset) append(key []byte) {
	if k.filter.MaybeSeen(key) {
		if _, dup := k.seen[string(key)]; dup {
			return
		}
	}
	k.filter.Add(key)
	k.seen[string(key)] = struct{}{}
	k.keys = append(k.keys, key)
}

// buildKeysets performs a single sequential pass over each object kind
// and returns the four routed keysets.
func buildKeysets(nodesPath, waysPath, areasPath string, cfg TypeConfig, width int) (map[Category]*keyset, error) {
	sets := map[Category]*keyset{
		CategoryPOI:      newKeyset(),
		CategoryLocation: newKeyset(),
		CategoryRegion:   newKeyset(),
		CategoryOther:    newKeyset(),
	}

	route := func(typeID uint16) (Category, bool) {
		if cfg.Ignored(typeID) {
			return 0, false
		}
		return cfg.Category(typeID)
	}

	addNames := func(set *keyset, kind Kind, offset uint64, names ...string) error {
		for _, name := range names {
			if name == "" {
				continue
			}
			key, err := encode(name, kind, offset, width)
			if err != nil {
				return err
			}
			set.append(key)
		}
		return nil
	}

	if err := forEachNode(nodesPath, func(rec NodeRecord) error {
		cat, ok := route(rec.TypeID)
		if !ok {
			return nil
		}
		if rec.Name == "" && rec.NameAlt == "" {
			return nil
		}
		return addNames(sets[cat], KindNode, rec.Offset, rec.Name, rec.NameAlt)
	}); err != nil {
		return nil, err
	}

	if err := forEachWay(waysPath, func(rec WayRecord) error {
		cat, ok := route(rec.TypeID)
		if !ok {
			return nil
		}
		if rec.Name == "" && rec.NameAlt == "" && rec.RefName == "" {
			return nil
		}
		return addNames(sets[cat], KindWay, rec.Offset, rec.Name, rec.NameAlt, rec.RefName)
	}); err != nil {
		return nil, err
	}

	if err := forEachArea(areasPath, func(rec AreaRecord) error {
		for _, ring := range rec.Rings {
			cat, ok := route(ring.TypeID)
			if !ok {
				continue
			}
			if ring.Name == "" && ring.NameAlt == "" {
				continue
			}
			// Offset is always the area's, not the ring's.
			if err := addNames(sets[cat], KindArea, rec.Offset, ring.Name, ring.NameAlt); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return sets, nil
}
