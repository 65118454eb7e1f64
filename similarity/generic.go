package similarity

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// GenericHamming is the fallback metric for similarity algorithms without
// a bespoke one: Hamming distance computed nibble-wise over two hex
// strings of equal length. No similarity is reported because arbitrary
// algorithms define no normalization basis.
//
// A length mismatch is an error, never a sentinel distance.
func GenericHamming(a, b string) (types.ComparisonResult, error) {
	if len(a) != len(b) {
		return types.ComparisonResult{}, errors.WithMessagef(ErrLengthMismatch,
			"%d vs %d hex characters", len(a), len(b))
	}

	distance := 0
	for i := 0; i < len(a); i++ {
		na, err := nibble(a[i])
		if err != nil {
			return types.ComparisonResult{}, err
		}
		nb, err := nibble(b[i])
		if err != nil {
			return types.ComparisonResult{}, err
		}
		distance += bits.OnesCount8(na ^ nb)
	}

	return types.ComparisonResult{Distance: intPtr(distance)}, nil
}

func nibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, errors.WithMessagef(ErrMalformedEncoding, "non-hex character %q", c)
}
