package similarity

import (
	"encoding/hex"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// BitFingerprint computes the Hamming distance between two fixed-width bit
// fingerprints given as hex strings, plus the normalized similarity
// 1 - distance/bitLength. Both inputs must be valid hex of the same
// length.
func BitFingerprint(a, b string) (types.ComparisonResult, error) {
	ba, err := decodeHex(a)
	if err != nil {
		return types.ComparisonResult{}, err
	}
	bb, err := decodeHex(b)
	if err != nil {
		return types.ComparisonResult{}, err
	}
	if len(ba) != len(bb) {
		return types.ComparisonResult{}, errors.WithMessagef(ErrLengthMismatch,
			"%d vs %d bytes", len(ba), len(bb))
	}
	if len(ba) == 0 {
		return types.ComparisonResult{}, errors.WithMessage(ErrMalformedEncoding, "empty fingerprint")
	}

	distance := hammingBytes(ba, bb)
	bitLength := len(ba) * 8

	return types.ComparisonResult{
		Distance:   intPtr(distance),
		Similarity: floatPtr(1 - float64(distance)/float64(bitLength)),
	}, nil
}

// hammingBytes counts differing bit positions between two equal-length
// byte slices.
func hammingBytes(a, b []byte) int {
	distance := 0
	for i := range a {
		distance += bits.OnesCount8(a[i] ^ b[i])
	}
	return distance
}

// decodeHex wraps hex decoding failures in ErrMalformedEncoding so callers
// can match them without knowing about encoding/hex.
func decodeHex(s string) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.WithMessagef(ErrMalformedEncoding, "%v", err)
	}
	return raw, nil
}
