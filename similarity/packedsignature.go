package similarity

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// hexCharsPerElement is the width of one 32-bit signature element in hex.
const hexCharsPerElement = 8

// PackedSignature estimates Jaccard similarity between two MinHash-style
// signatures. Each input is a hex string packing an ordered sequence of
// big-endian 32-bit unsigned integers; the estimate is the fraction of
// positions where the two signatures agree.
//
// An input whose length is not a multiple of 8 hex characters fails with
// ErrMalformedEncoding rather than producing a fabricated score.
func PackedSignature(a, b string) (types.ComparisonResult, error) {
	sa, err := parseSignature(a)
	if err != nil {
		return types.ComparisonResult{}, err
	}
	sb, err := parseSignature(b)
	if err != nil {
		return types.ComparisonResult{}, err
	}
	if len(sa) != len(sb) {
		return types.ComparisonResult{}, errors.WithMessagef(ErrLengthMismatch,
			"%d vs %d signature elements", len(sa), len(sb))
	}

	equal := 0
	for i := range sa {
		if sa[i] == sb[i] {
			equal++
		}
	}

	return types.ComparisonResult{
		Similarity: floatPtr(float64(equal) / float64(len(sa))),
	}, nil
}

// parseSignature decodes a hex string into its 32-bit signature elements.
func parseSignature(s string) ([]uint32, error) {
	if len(s) == 0 || len(s)%hexCharsPerElement != 0 {
		return nil, errors.WithMessagef(ErrMalformedEncoding,
			"signature length %d is not a positive multiple of %d hex characters",
			len(s), hexCharsPerElement)
	}
	raw, err := decodeHex(s)
	if err != nil {
		return nil, err
	}

	sig := make([]uint32, len(raw)/4)
	for i := range sig {
		sig[i] = binary.BigEndian.Uint32(raw[i*4:])
	}
	return sig, nil
}
