// Trie key codec: compose/decompose a key from (text, kind, offset).
//
// A key is text_bytes ∥ kind_marker ∥ offset_bytes_be, where offset_bytes_be
// is exactly width bytes, most-significant byte first. MSB-first placement
// is deliberate: offsets minted in the same build run tend to share their
// high-order bytes, and placing those shared bytes immediately after the
// separator maximises sibling fan-in (and therefore prefix sharing) in the
// trie.
package textindex

import "fmt"

// minKeyLen is the shortest possible key: one byte of text, one kind
// marker, and a width-1 offset.
const minKeyLen = 1 + 1 + 1

// maxWidth and minWidth bound the per-build offset width.
const (
	minWidth = 1
	maxWidth = 8
)

// encode composes a trie key from text, kind and offset using width bytes
// for the offset. Returns ErrEmptyText if text is empty.
func encode(text string, kind Kind, offset uint64, width int) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}

	key := make([]byte, 0, len(text)+1+width)
	key = append(key, text...)
	key = append(key, byte(kind))
	for i := width - 1; i >= 0; i-- {
		key = append(key, byte(offset>>(8*uint(i))))
	}
	return key, nil
}

// decode splits a trie key back into its text, kind and offset using the
// per-index width. Returns ErrTruncated for a key shorter than the
// minimum shape, and ErrBadKind when the byte preceding the offset is not
// a valid kind marker.
func decode(key []byte, width int) (text string, kind Kind, offset uint64, err error) {
	if len(key) < width+1+1 {
		return "", 0, 0, ErrTruncated
	}

	kindPos := len(key) - width - 1
	kindByte := key[kindPos]

	switch kindByte {
	case byte(KindNode):
		kind = KindNode
	case byte(KindWay):
		kind = KindWay
	case byte(KindArea):
		kind = KindArea
	default:
		return "", 0, 0, ErrBadKind
	}

	for _, b := range key[kindPos+1:] {
		offset = offset<<8 | uint64(b)
	}

	return string(key[:kindPos]), kind, offset, nil
}

// sentinelKey builds the reserved key that records the offset width used
// throughout one built index: 0x04 followed by the ASCII decimal digits
// of width, with no padding and no sign.
func sentinelKey(width int) []byte {
	return append([]byte{0x04}, []byte(fmt.Sprintf("%d", width))...)
}

// sentinelPrefix is the single byte every sentinel key begins with.
const sentinelPrefix = 0x04
