package nilsimsa

import (
	"encoding/hex"
	"fmt"

	nserrors "github.com/tamirms/nilsimsa/errors"
	intbits "github.com/tamirms/nilsimsa/internal/bits"
)

// MaxScore is the similarity score of two identical digests.
const MaxScore = 128

// Compare scores the similarity of two digests: 128 minus their Hamming
// distance, floored at 0. Identical digests score 128; digests of
// unrelated inputs land near 0.
func Compare(a, b Digest) int {
	return score(intbits.Hamming(a[:], b[:]))
}

// CompareWithCutoff scores a against b, but stops accumulating Hamming
// distance as soon as the running total exceeds cutoff. The result is
// 128 minus the distance accumulated through the byte that crossed the
// cutoff, so any result >= 128-cutoff is the exact score and any smaller
// result means "the true score is at most this".
//
// A negative cutoff stops at the first differing byte. Cutoffs of 256 or
// more never stop early; CompareWithCutoff then equals Compare.
func CompareWithCutoff(a, b Digest, cutoff int) int {
	return score(intbits.HammingCutoff(a[:], b[:], cutoff))
}

// CompareHex hex-decodes two digests and scores them. The inputs must
// decode to equal lengths but need not be full 32-byte digests: truncated
// digest prefixes compare fine, against a correspondingly smaller maximum
// distance.
func CompareHex(a, b string) (int, error) {
	da, db, err := decodePair(a, b)
	if err != nil {
		return 0, err
	}
	return score(intbits.Hamming(da, db)), nil
}

// CompareHexWithCutoff is the early-exit form of CompareHex, with the
// cutoff semantics of CompareWithCutoff.
func CompareHexWithCutoff(a, b string, cutoff int) (int, error) {
	da, db, err := decodePair(a, b)
	if err != nil {
		return 0, err
	}
	return score(intbits.HammingCutoff(da, db, cutoff)), nil
}

// decodePair hex-decodes both comparison inputs and checks that the
// decoded lengths match.
func decodePair(a, b string) ([]byte, []byte, error) {
	da, err := hex.DecodeString(a)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: first input: %v", nserrors.ErrMalformedDigest, err)
	}
	db, err := hex.DecodeString(b)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: second input: %v", nserrors.ErrMalformedDigest, err)
	}
	if len(da) != len(db) {
		return nil, nil, fmt.Errorf("%w: %d vs %d bytes", nserrors.ErrLengthMismatch, len(da), len(db))
	}
	return da, db, nil
}

// score converts a Hamming distance to the 0..128 similarity scale.
// Distances past 128 (possible only for anti-correlated digests) floor
// at 0 rather than going negative.
func score(distance int) int {
	if distance > MaxScore {
		return 0
	}
	return MaxScore - distance
}
