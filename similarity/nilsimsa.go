package similarity

import (
	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// nilsimsaDigestBytes is the fixed size of a Nilsimsa digest.
const nilsimsaDigestBytes = 32

// Nilsimsa compares two hex-encoded Nilsimsa digests. The raw correlation
// score ranges over [-128, 128] with 128 meaning identical; it is exposed
// as distance = 128 - score and similarity = (score + 128) / 256.
func Nilsimsa(a, b string) (types.ComparisonResult, error) {
	score, err := NilsimsaScore(a, b)
	if err != nil {
		return types.ComparisonResult{}, err
	}

	return types.ComparisonResult{
		Distance:   intPtr(128 - score),
		Similarity: floatPtr(float64(score+128) / 256),
	}, nil
}

// NilsimsaScore returns the raw correlation score between two hex-encoded
// 256-bit Nilsimsa digests: 128 minus the number of differing bits.
func NilsimsaScore(a, b string) (int, error) {
	da, err := decodeNilsimsa(a)
	if err != nil {
		return 0, err
	}
	db, err := decodeNilsimsa(b)
	if err != nil {
		return 0, err
	}
	return 128 - hammingBytes(da, db), nil
}

func decodeNilsimsa(s string) ([]byte, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != nilsimsaDigestBytes {
		return nil, errors.WithMessagef(ErrMalformedEncoding,
			"nilsimsa digest is %d bytes, want %d", len(raw), nilsimsaDigestBytes)
	}
	return raw, nil
}
