//go:build !linux

package fileio

// adviseSequential is a no-op on non-Linux platforms.
// FADV_SEQUENTIAL is Linux-specific.
func adviseSequential(fd int, size int64, data []byte) {
	// No-op
}
