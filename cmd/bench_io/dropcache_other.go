//go:build !linux

package main

// dropCache has no portable implementation: FADV_DONTNEED is
// Linux-specific. Passes run against whatever the OS has cached.
func dropCache(string) {
	// No-op
}
