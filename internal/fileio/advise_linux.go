//go:build linux

package fileio

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the file and its mapping will
// be read front to back, so readahead can run well ahead of the hash loop.
// Best-effort: errors are silently ignored.
func adviseSequential(fd int, size int64, data []byte) {
	_ = unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)
	if len(data) > 0 {
		_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	}
}
