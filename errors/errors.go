// Package errors defines all exported error sentinels for the nilsimsa library.
//
// This is the single source of truth for error values. Both the top-level
// nilsimsa package and internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Hasher errors
var (
	ErrHasherFinalized = errors.New("nilsimsa: hasher is finalized")
)

// Digest parsing errors
var (
	ErrDigestLength    = errors.New("nilsimsa: digest hex must be 64 characters")
	ErrMalformedDigest = errors.New("nilsimsa: malformed digest hex")
)

// Comparison errors
var (
	ErrLengthMismatch = errors.New("nilsimsa: compared digests have different lengths")
)

// File input errors (used by internal/fileio)
var (
	ErrFileEmpty = errors.New("nilsimsa: file is empty")
)
