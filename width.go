// Offset-width planner: picks the single offset byte width W used
// throughout one build.
package textindex

import "os"

// planWidth determines W from the sizes of the three object files:
// W = max(minBytes(size) for each file), clamped to [1,8], and W=1
// when all three files are empty (or absent).
func planWidth(nodesPath, waysPath, areasPath string) (int, error) {
	width := minWidth

	for _, path := range []string{nodesPath, waysPath, areasPath} {
		size, err := fileSize(path)
		if err != nil {
			return 0, err
		}
		if w := minBytes(size); w > width {
			width = w
		}
	}

	if width > maxWidth {
		width = maxWidth
	}
	return width, nil
}

// fileSize returns a file's byte length, or 0 if it does not exist — an
// absent object file contributes no offsets and is treated like an empty
// one.
func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return info.Size(), nil
}

// minBytes computes ⌈log256(size+1)⌉, the smallest n with size < 2^(8n),
// clamped to at least 1.
func minBytes(size int64) int {
	if size <= 0 {
		return 1
	}
	n := 0
	limit := int64(1)
	for limit <= size {
		limit <<= 8
		n++
		if n >= maxWidth {
			break
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}
