// Build lock tests: a second acquireBuildLock on the same path must
// block until the first holder releases.
package textindex

import (
	"path/filepath"
	"testing"
	"time"
)

func TestAcquireReleaseBuildLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".textindex-build.lock")

	l, err := acquireBuildLock(path)
	if err != nil {
		t.Fatalf("acquireBuildLock: %v", err)
	}
	if err := l.release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestBuildLockExcludesSecondHolder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".textindex-build.lock")

	first, err := acquireBuildLock(path)
	if err != nil {
		t.Fatalf("acquireBuildLock (first): %v", err)
	}

	acquired := make(chan *buildLock, 1)
	go func() {
		l, err := acquireBuildLock(path)
		if err != nil {
			t.Error(err)
			return
		}
		acquired <- l
	}()

	select {
	case <-acquired:
		t.Fatal("second acquireBuildLock succeeded while first holder was still locked")
	case <-time.After(100 * time.Millisecond):
		// Expected: the second call is still blocked.
	}

	if err := first.release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	select {
	case second := <-acquired:
		if err := second.release(); err != nil {
			t.Fatalf("release (second): %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second acquireBuildLock did not unblock after first holder released")
	}
}

func TestBuildLockReleaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".textindex-build.lock")

	l, err := acquireBuildLock(path)
	if err != nil {
		t.Fatalf("acquireBuildLock: %v", err)
	}
	if err := l.release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := l.release(); err != nil {
		t.Fatalf("second release should be a no-op, got: %v", err)
	}
}
