package nilsimsa

import (
	"encoding/hex"
	"fmt"

	nserrors "github.com/tamirms/nilsimsa/errors"
	intbits "github.com/tamirms/nilsimsa/internal/bits"
)

// DigestSize is the size of a Nilsimsa digest in bytes.
const DigestSize = 32

// Digest is a 256-bit Nilsimsa digest in canonical (hex) byte order.
// Similar inputs produce digests that agree in most bit positions; score
// two digests with Compare.
type Digest [DigestSize]byte

// String returns the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a 64-character hex string into a Digest. Both upper
// and lower case are accepted. Returns an error wrapping ErrDigestLength
// or ErrMalformedDigest on bad input.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*DigestSize {
		return d, fmt.Errorf("%w: got %d", nserrors.ErrDigestLength, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", nserrors.ErrMalformedDigest, err)
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler, emitting the hex form.
func (d Digest) MarshalText() ([]byte, error) {
	out := make([]byte, 2*DigestSize)
	hex.Encode(out, d[:])
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the hex
// form produced by MarshalText or String.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Bits returns the number of set bits in the digest. Inputs shorter than
// three bytes produce the all-zero digest; a few hundred bytes of text
// typically sets around half the 256 bits.
func (d Digest) Bits() int {
	return intbits.OnesCount(d[:])
}
