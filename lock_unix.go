//go:build unix || linux || darwin

// flock(2) implementation for Unix platforms.
// Both methods are called with l.mu held by acquireBuildLock/release.
package textindex

import "syscall"

func (l *buildLock) lock() error {
	// Blocking flock — no LOCK_NB so a racing Build waits rather than failing.
	return syscall.Flock(int(l.f.Fd()), syscall.LOCK_EX)
}

func (l *buildLock) unlock() error {
	return syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
}
