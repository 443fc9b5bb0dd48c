//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// dropCache asks the kernel to evict path's pages from the page cache so
// the next pass reads from disk. Dirty pages are synced first because
// DONTNEED skips pages it cannot drop.
//
// Best-effort: errors are silently ignored.
func dropCache(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return
	}
	_ = f.Sync()
	_ = unix.Fadvise(int(f.Fd()), 0, stat.Size(), unix.FADV_DONTNEED)
}
