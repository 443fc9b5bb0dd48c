// Package nilsimsa implements the Nilsimsa locality-sensitive hash.
//
// Unlike a cryptographic hash, where flipping one input bit flips half the
// output, Nilsimsa maps similar inputs to similar digests: the number of
// agreeing bits between two 256-bit digests measures how alike the inputs
// are. It was designed for spam filtering and remains useful for clustering
// near-duplicate text.
//
// # Basic Usage
//
// Hashing a stream:
//
//	h := nilsimsa.New()
//	if _, err := io.Copy(h, file); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(h.Digest())
//
// Scoring two digests:
//
//	score := nilsimsa.Compare(d1, d2) // 128 = identical, near 0 = unrelated
//
// Scores above roughly 54 are rarely coincidence; the expected score of two
// unrelated inputs is 0 with almost all mass below 30.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Hashing: hasher.go (New, Write, Digest, Sum), tran.go (trigram mixing table)
//   - Digests: digest.go (Digest, ParseDigest, text marshaling)
//   - Scoring: compare.go (Compare, CompareWithCutoff, hex forms)
//   - Kernels: internal/bits/ (popcount table, Hamming distance)
//   - File input: internal/fileio/ (memory-mapped reads for cmd/nilsimsa)
package nilsimsa
