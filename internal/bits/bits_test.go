package bits

import (
	"encoding/binary"
	"hash/fnv"
	mathbits "math/bits"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func randomBytes(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(rng.Uint64())
	}
	return buf
}

// TestPopcTable verifies every entry of the lookup table against the
// hardware popcount.
func TestPopcTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := mathbits.OnesCount8(uint8(i))
		if got := Popcount(byte(i)); got != want {
			t.Errorf("Popcount(0x%02x) = %d, want %d", i, got, want)
		}
	}
}

func TestPopcountKnownValues(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{0x00, 0},
		{0x01, 1},
		{0x80, 1},
		{0x0f, 4},
		{0xf0, 4},
		{0xaa, 4},
		{0x55, 4},
		{0x7f, 7},
		{0xff, 8},
	}
	for _, tc := range tests {
		if got := Popcount(tc.b); got != tc.want {
			t.Errorf("Popcount(0x%02x) = %d, want %d", tc.b, got, tc.want)
		}
	}
}

func TestOnesCount(t *testing.T) {
	if got := OnesCount(nil); got != 0 {
		t.Errorf("OnesCount(nil) = %d, want 0", got)
	}
	if got := OnesCount([]byte{0xff, 0x0f, 0x01}); got != 13 {
		t.Errorf("OnesCount = %d, want 13", got)
	}

	rng := newTestRNG(t)
	buf := randomBytes(rng, 1024)
	want := 0
	for _, b := range buf {
		want += mathbits.OnesCount8(b)
	}
	if got := OnesCount(buf); got != want {
		t.Errorf("OnesCount = %d, want %d", got, want)
	}
}

// TestHamming cross-checks against a hardware-popcount reference on
// random buffers and verifies identity and symmetry.
func TestHamming(t *testing.T) {
	rng := newTestRNG(t)
	for _, n := range []int{1, 7, 32, 256} {
		a := randomBytes(rng, n)
		b := randomBytes(rng, n)

		want := 0
		for i := range a {
			want += mathbits.OnesCount8(a[i] ^ b[i])
		}
		if got := Hamming(a, b); got != want {
			t.Errorf("len %d: Hamming = %d, want %d", n, got, want)
		}
		if got := Hamming(b, a); got != want {
			t.Errorf("len %d: Hamming not symmetric: %d vs %d", n, got, want)
		}
		if got := Hamming(a, a); got != 0 {
			t.Errorf("len %d: Hamming(a, a) = %d, want 0", n, got)
		}
	}
}

func TestHammingKnownValues(t *testing.T) {
	zeros := make([]byte, 4)
	ones := []byte{0xff, 0xff, 0xff, 0xff}
	if got := Hamming(zeros, ones); got != 32 {
		t.Errorf("Hamming(zeros, ones) = %d, want 32", got)
	}
	if got := Hamming([]byte{0x00}, []byte{0x01}); got != 1 {
		t.Errorf("single-bit difference: Hamming = %d, want 1", got)
	}
	if got := Hamming(nil, nil); got != 0 {
		t.Errorf("Hamming(nil, nil) = %d, want 0", got)
	}
}

// TestHammingCutoffBreakPoints pins where the scan stops: the distance
// accumulated through the byte that pushed the running total past the
// cutoff, never a rounded-off value.
func TestHammingCutoffBreakPoints(t *testing.T) {
	zeros := make([]byte, 4)
	ones := []byte{0xff, 0xff, 0xff, 0xff}

	tests := []struct {
		cutoff int
		want   int
	}{
		{-1, 8}, // first byte contributes 8, already past
		{0, 8},
		{7, 8},
		{8, 16}, // 8 is not past 8; the second byte is
		{12, 16},
		{16, 24},
		{31, 32},
		{32, 32}, // full scan, exact
		{1000, 32},
	}
	for _, tc := range tests {
		if got := HammingCutoff(zeros, ones, tc.cutoff); got != tc.want {
			t.Errorf("cutoff %d: got %d, want %d", tc.cutoff, got, tc.want)
		}
	}

	// Equal inputs never accumulate distance, so even a negative cutoff
	// runs to an exact zero.
	if got := HammingCutoff(ones, ones, -1); got != 0 {
		t.Errorf("equal inputs, negative cutoff: got %d, want 0", got)
	}
}

// TestHammingCutoffExactness verifies the contract relied on by callers:
// a result at or below the cutoff is the exact Hamming distance.
func TestHammingCutoffExactness(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 1000; i++ {
		n := 1 + rng.IntN(64)
		a := randomBytes(rng, n)
		b := randomBytes(rng, n)
		cutoff := rng.IntN(8*n + 16)

		got := HammingCutoff(a, b, cutoff)
		exact := Hamming(a, b)
		if got <= cutoff && got != exact {
			t.Fatalf("result %d <= cutoff %d claimed exact but Hamming = %d",
				got, cutoff, exact)
		}
		if got > exact {
			t.Fatalf("partial distance %d exceeds full distance %d", got, exact)
		}
	}
}

func TestHammingCutoffMatchesHammingWhenAdmitted(t *testing.T) {
	rng := newTestRNG(t)
	a := randomBytes(rng, 32)
	b := randomBytes(rng, 32)
	if got, want := HammingCutoff(a, b, 256), Hamming(a, b); got != want {
		t.Errorf("cutoff 256: got %d, want %d", got, want)
	}
}
