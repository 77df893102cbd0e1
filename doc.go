// Package textindex builds and queries prefix-search tries over named map
// objects (nodes, ways, multipolygon areas).
//
// An import pass (Build) streams three object files, buckets each named
// object into one of four categories (POI, Location, Region, Other), and
// persists one prefix trie per category. A query pass (Open, then
// Index.Search) loads those tries read-only and resolves a text prefix to
// the set of typed object references sharing that prefix.
//
// The on-disk trie is not a sidecar index over a separate key/value store:
// every key handed to the trie already encodes the display text, the
// object's kind, and its byte offset, so the trie itself is the index.
package textindex
