// Trie-file body checksums: three selectable algorithms guarding the
// compressed key block against truncation/corruption, detected at
// load time.
package textindex

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm selectors for BuildConfig.ChecksumAlgorithm.
const (
	ChecksumXXHash3 = 1 // default, fastest
	ChecksumFNV1a   = 2 // no external dependency
	ChecksumBlake2b = 3 // best distribution
)

// checksum computes an 8-byte digest of body using the given algorithm.
// An unrecognised algorithm is treated as ChecksumXXHash3.
func checksum(alg int, body []byte) uint64 {
	switch alg {
	case ChecksumFNV1a:
		h := fnv.New64a()
		h.Write(body)
		return h.Sum64()
	case ChecksumBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(body)
		sum := h.Sum(nil)
		return binary.BigEndian.Uint64(sum)
	case ChecksumXXHash3:
		fallthrough
	default:
		return xxh3.Hash(body)
	}
}
