// Package fileio provides read-only memory-mapped file input for the
// command-line tools. The library packages take bytes and readers only;
// anything that touches the filesystem lives here or in cmd/.
package fileio

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	nserrors "github.com/tamirms/nilsimsa/errors"
)

// MappedFile is a read-only memory-mapped view of a regular file.
type MappedFile struct {
	mmap mmap.MMap
	size int64
}

// Open memory-maps path for reading and hints to the kernel that the
// mapping will be read sequentially. The file descriptor is closed before
// Open returns; per POSIX mmap(2) the mapping stays valid without it.
//
// Zero-length files cannot be mapped and return ErrFileEmpty. Callers
// hashing files should treat empty input as a defined case (the all-zero
// digest) rather than an error.
func Open(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", nserrors.ErrFileEmpty, path)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap input file: %w", err)
	}
	adviseSequential(int(f.Fd()), stat.Size(), mm)

	return &MappedFile{mmap: mm, size: stat.Size()}, nil
}

// Bytes returns the mapped file contents. The slice is only valid until
// Close.
func (m *MappedFile) Bytes() []byte {
	return []byte(m.mmap)
}

// Size returns the mapped file's size in bytes.
func (m *MappedFile) Size() int64 {
	return m.size
}

// Close unmaps the file. Safe to call more than once.
func (m *MappedFile) Close() error {
	if m.mmap == nil {
		return nil
	}
	mm := m.mmap
	m.mmap = nil
	return mm.Unmap()
}
