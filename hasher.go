package nilsimsa

import (
	"io"
	"unsafe"

	nserrors "github.com/tamirms/nilsimsa/errors"
)

// Hasher accumulates a Nilsimsa digest incrementally. Input may arrive in
// any number of Write calls; the digest depends only on the concatenated
// byte stream, never on how it was chunked.
//
// The zero value is ready to use. Hasher implements io.Writer so input can
// be streamed with io.Copy. It is not safe for concurrent use.
//
// Lifecycle: Digest finalizes the hasher. Further Write calls fail with
// ErrHasherFinalized until Reset; Digest itself may be called again and
// returns the same value.
type Hasher struct {
	count     uint64      // total bytes consumed
	acc       [256]uint64 // trigram bucket counters
	window    [4]byte     // most recent input bytes, newest first
	windowLen int         // valid bytes in window, 0..4
	finalized bool
}

var _ io.Writer = (*Hasher)(nil)

// New returns a Hasher ready to accept input.
func New() *Hasher {
	return &Hasher{}
}

// Write feeds p into the hash. It consumes all of p and only fails, with
// ErrHasherFinalized, after Digest has been called.
//
// Every input byte is combined with up to four bytes of preceding history:
// the byte completes up to 8 trigram combinations, each hashed by tran3
// into one of 256 buckets.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, nserrors.ErrHasherFinalized
	}
	n := len(p)
	h.count += uint64(n)

	// Warm up byte by byte until four bytes of history exist.
	for h.windowLen < 4 && len(p) > 0 {
		h.warmup(p[0])
		p = p[1:]
	}

	// Steady state: full window, 8 bucket updates per byte. The window is
	// kept in a local so the compiler can keep it in registers across the
	// loop.
	w := h.window
	for _, ch := range p {
		h.acc[tran3(ch, w[0], w[1], 0)]++
		h.acc[tran3(ch, w[0], w[2], 1)]++
		h.acc[tran3(ch, w[1], w[2], 2)]++
		h.acc[tran3(ch, w[0], w[3], 3)]++
		h.acc[tran3(ch, w[1], w[3], 4)]++
		h.acc[tran3(ch, w[2], w[3], 5)]++
		h.acc[tran3(w[3], w[0], ch, 6)]++
		h.acc[tran3(w[3], w[2], ch, 7)]++
		w[3], w[2], w[1], w[0] = w[2], w[1], w[0], ch
	}
	h.window = w
	return n, nil
}

// WriteString feeds s into the hash. It avoids the []byte(s) copy by
// viewing the string's bytes directly; Write never modifies its input, so
// the string's immutability is preserved.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// warmup consumes one byte while the history window is still filling.
// The first two bytes complete no trigrams, the third completes one and
// the fourth three.
func (h *Hasher) warmup(ch byte) {
	w := &h.window
	switch h.windowLen {
	case 3:
		h.acc[tran3(ch, w[0], w[1], 0)]++
		h.acc[tran3(ch, w[0], w[2], 1)]++
		h.acc[tran3(ch, w[1], w[2], 2)]++
	case 2:
		h.acc[tran3(ch, w[0], w[1], 0)]++
	}
	w[3], w[2], w[1], w[0] = w[2], w[1], w[0], ch
	h.windowLen++
}

// Digest finalizes the hash and returns the 32-byte digest.
//
// Bucket i contributes a set bit when its count strictly exceeds the mean
// bucket occupancy (total trigrams / 256). The resulting 256-bit bitmap is
// emitted byte-reversed, matching the hex form every Nilsimsa
// implementation prints.
func (h *Hasher) Digest() Digest {
	h.finalized = true

	threshold := h.trigrams() / 256

	var d Digest
	for i, n := range &h.acc {
		if n > threshold {
			d[31-(i>>3)] |= 1 << (i & 7)
		}
	}
	return d
}

// trigrams returns the number of trigram combinations hashed so far for
// h.count input bytes: 0, 0, 0, 1, 4 for the first five counts, then
// 8n-28 (each byte past the fourth completes 8 combinations).
func (h *Hasher) trigrams() uint64 {
	switch {
	case h.count <= 2:
		return 0
	case h.count == 3:
		return 1
	case h.count == 4:
		return 4
	default:
		return 8*h.count - 28
	}
}

// Reset returns the hasher to its initial empty state, clearing the
// finalized flag so it can be reused for a new input.
func (h *Hasher) Reset() {
	*h = Hasher{}
}

// Count returns the number of input bytes consumed so far.
func (h *Hasher) Count() uint64 {
	return h.count
}

// Sum computes the Nilsimsa digest of data in one call.
func Sum(data []byte) Digest {
	var h Hasher
	_, _ = h.Write(data) // cannot fail: a fresh hasher is never finalized
	return h.Digest()
}

// SumString computes the Nilsimsa digest of s in one call.
func SumString(s string) Digest {
	var h Hasher
	_, _ = h.WriteString(s)
	return h.Digest()
}
