package nilsimsa

import (
	"errors"
	"strings"
	"testing"

	nserrors "github.com/tamirms/nilsimsa/errors"
)

// =============================================================================
// Hex round-trip
// =============================================================================

func TestDigestStringRoundTrip(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 100; i++ {
		data := make([]byte, 64+rng.IntN(256))
		fillFromRNG(rng, data)
		d := Sum(data)

		s := d.String()
		if len(s) != 64 {
			t.Fatalf("String() length %d, want 64", len(s))
		}
		if s != strings.ToLower(s) {
			t.Fatalf("String() not lowercase: %s", s)
		}

		parsed, err := ParseDigest(s)
		if err != nil {
			t.Fatalf("ParseDigest(%s): %v", s, err)
		}
		if parsed != d {
			t.Fatalf("round trip: got %s, want %s", parsed, d)
		}
	}
}

func TestParseDigestCaseInsensitive(t *testing.T) {
	want := mustParseDigest(t, testStringDigestHex)
	got, err := ParseDigest(strings.ToUpper(testStringDigestHex))
	if err != nil {
		t.Fatalf("ParseDigest(upper): %v", err)
	}
	if got != want {
		t.Errorf("uppercase parse %s, want %s", got, want)
	}
}

func TestParseDigestErrors(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		for _, s := range []string{
			"",
			"42c8",
			testStringDigestHex[:63],
			testStringDigestHex + "0",
		} {
			_, err := ParseDigest(s)
			if !errors.Is(err, nserrors.ErrDigestLength) {
				t.Errorf("ParseDigest(%d chars): got %v, want ErrDigestLength", len(s), err)
			}
		}
	})

	t.Run("malformed", func(t *testing.T) {
		bad := strings.Repeat("zz", 32)
		if _, err := ParseDigest(bad); !errors.Is(err, nserrors.ErrMalformedDigest) {
			t.Errorf("ParseDigest(non-hex): got %v, want ErrMalformedDigest", err)
		}

		// Correct length, one bad character.
		almost := testStringDigestHex[:63] + "g"
		if _, err := ParseDigest(almost); !errors.Is(err, nserrors.ErrMalformedDigest) {
			t.Errorf("ParseDigest(trailing g): got %v, want ErrMalformedDigest", err)
		}
	})
}

// =============================================================================
// Text marshaling
// =============================================================================

func TestDigestTextMarshaling(t *testing.T) {
	d := mustParseDigest(t, loremDigestHex)

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != loremDigestHex {
		t.Errorf("MarshalText = %s, want %s", text, loremDigestHex)
	}

	var back Digest
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != d {
		t.Errorf("UnmarshalText round trip: got %s, want %s", back, d)
	}

	if err := back.UnmarshalText([]byte("nope")); !errors.Is(err, nserrors.ErrDigestLength) {
		t.Errorf("UnmarshalText(short): got %v, want ErrDigestLength", err)
	}
}

// =============================================================================
// Bits
// =============================================================================

func TestDigestBits(t *testing.T) {
	tests := []struct {
		hex  string
		want int
	}{
		{"0000000000000000000000000000000000000000000000000000000000000000", 0},
		{"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 256},
		{testStringDigestHex, 55},
		{loremDigestHex, 117},
		{foxDigestHex, 84},
	}
	for _, tc := range tests {
		d := mustParseDigest(t, tc.hex)
		if got := d.Bits(); got != tc.want {
			t.Errorf("Bits(%s) = %d, want %d", tc.hex[:16], got, tc.want)
		}
	}
}
