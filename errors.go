// Sentinel errors returned across the build and query paths.
package textindex

import "errors"

// Sentinel errors returned by package operations, documented individually
// below alongside the operation that returns them.
var (
	// ErrEmptyText is returned by encode when asked to key an empty string.
	ErrEmptyText = errors.New("textindex: empty display text")

	// ErrBadKind is returned by decode when the kind marker byte is not
	// one of {0x01, 0x02, 0x03}.
	ErrBadKind = errors.New("textindex: bad kind marker")

	// ErrTruncated is returned by decode when a key is shorter than the
	// minimum text+kind+offset shape allows.
	ErrTruncated = errors.New("textindex: truncated key")

	// ErrIndexCorrupt wraps ErrBadKind/ErrTruncated when surfaced from the
	// query engine, and is also returned directly for other on-disk shape
	// violations (bad sentinel, checksum mismatch, bad header).
	ErrIndexCorrupt = errors.New("textindex: index corrupt")

	// ErrBuildFailed is returned when the trie library refuses a keyset.
	ErrBuildFailed = errors.New("textindex: build failed")

	// ErrWriteFailed is returned when a built trie cannot be persisted.
	ErrWriteFailed = errors.New("textindex: write failed")

	// ErrNoCategoriesAvailable is returned by Open when none of the four
	// category files could be opened.
	ErrNoCategoriesAvailable = errors.New("textindex: no category tries available")

	// ErrMissingSentinel is returned by Open when no loaded category trie
	// contains the offset-width sentinel key.
	ErrMissingSentinel = errors.New("textindex: offset width sentinel not found")

	// ErrSearchFailed wraps a trie-layer failure during prefix traversal.
	ErrSearchFailed = errors.New("textindex: search failed")

	// ErrNotLoaded is returned by Search/All when called on an Index that
	// has not completed Open.
	ErrNotLoaded = errors.New("textindex: index not loaded")

	// ErrBuildLocked is returned by Build when the destination directory's
	// build lock file cannot be opened or locked. A lock held by another
	// build is waited for, not reported as an error.
	ErrBuildLocked = errors.New("textindex: cannot acquire destination directory build lock")
)
