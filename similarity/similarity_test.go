package similarity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitFingerprint(t *testing.T) {
	t.Run("identical inputs", func(t *testing.T) {
		res, err := BitFingerprint("deadbeef", "deadbeef")
		require.NoError(t, err)
		require.NotNil(t, res.Distance)
		require.NotNil(t, res.Similarity)
		assert.Equal(t, 0, *res.Distance)
		assert.Equal(t, 1.0, *res.Similarity)
	})

	t.Run("single differing bit", func(t *testing.T) {
		res, err := BitFingerprint("00", "01")
		require.NoError(t, err)
		assert.Equal(t, 1, *res.Distance)
		assert.InDelta(t, 1-1.0/8, *res.Similarity, 1e-9)
	})

	t.Run("all bits differ", func(t *testing.T) {
		res, err := BitFingerprint("0000", "ffff")
		require.NoError(t, err)
		assert.Equal(t, 16, *res.Distance)
		assert.Equal(t, 0.0, *res.Similarity)
	})

	t.Run("symmetry", func(t *testing.T) {
		pairs := [][2]string{
			{"deadbeef", "beefdead"},
			{"0123456789abcdef", "fedcba9876543210"},
			{"00", "ff"},
		}
		for _, p := range pairs {
			ab, err := BitFingerprint(p[0], p[1])
			require.NoError(t, err)
			ba, err := BitFingerprint(p[1], p[0])
			require.NoError(t, err)
			assert.Equal(t, *ab.Distance, *ba.Distance)
		}
	})

	t.Run("odd hex length", func(t *testing.T) {
		_, err := BitFingerprint("abc", "abc")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})

	t.Run("non-hex input", func(t *testing.T) {
		_, err := BitFingerprint("zzzz", "zzzz")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := BitFingerprint("ab", "abcd")
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := BitFingerprint("", "")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})
}

func TestPackedSignature(t *testing.T) {
	t.Run("identical signatures", func(t *testing.T) {
		sig := "000000010000000200000003"
		res, err := PackedSignature(sig, sig)
		require.NoError(t, err)
		require.NotNil(t, res.Similarity)
		assert.Nil(t, res.Distance)
		assert.Equal(t, 1.0, *res.Similarity)
	})

	t.Run("one of two elements differs", func(t *testing.T) {
		res, err := PackedSignature("0000000100000002", "0000000100000009")
		require.NoError(t, err)
		assert.Equal(t, 0.5, *res.Similarity)
	})

	t.Run("fully disjoint signatures", func(t *testing.T) {
		res, err := PackedSignature("0000000100000002", "0000000300000004")
		require.NoError(t, err)
		assert.Equal(t, 0.0, *res.Similarity)
	})

	t.Run("length not a multiple of eight", func(t *testing.T) {
		for _, in := range []string{"abcd", "00000001ab", "0000001"} {
			_, err := PackedSignature(in, "00000001")
			require.ErrorIs(t, err, ErrMalformedEncoding, "input %q", in)
			_, err = PackedSignature("00000001", in)
			require.ErrorIs(t, err, ErrMalformedEncoding, "input %q", in)
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		_, err := PackedSignature("", "")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})

	t.Run("element count mismatch", func(t *testing.T) {
		_, err := PackedSignature("00000001", "0000000100000002")
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("non-hex signature", func(t *testing.T) {
		_, err := PackedSignature("0000000g", "00000001")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})
}

func TestNilsimsa(t *testing.T) {
	zeros := strings.Repeat("00", 32)
	ones := strings.Repeat("ff", 32)
	// Differs from zeros in exactly 128 bit positions.
	half := strings.Repeat("ff", 16) + strings.Repeat("00", 16)

	t.Run("identical digests score 128", func(t *testing.T) {
		score, err := NilsimsaScore(zeros, zeros)
		require.NoError(t, err)
		assert.Equal(t, 128, score)

		res, err := Nilsimsa(zeros, zeros)
		require.NoError(t, err)
		assert.Equal(t, 0, *res.Distance)
		assert.Equal(t, 1.0, *res.Similarity)
	})

	t.Run("opposite digests score -128", func(t *testing.T) {
		score, err := NilsimsaScore(zeros, ones)
		require.NoError(t, err)
		assert.Equal(t, -128, score)

		res, err := Nilsimsa(zeros, ones)
		require.NoError(t, err)
		assert.Equal(t, 256, *res.Distance)
		assert.Equal(t, 0.0, *res.Similarity)
	})

	t.Run("score zero normalizes to the midpoint", func(t *testing.T) {
		score, err := NilsimsaScore(zeros, half)
		require.NoError(t, err)
		assert.Equal(t, 0, score)

		res, err := Nilsimsa(zeros, half)
		require.NoError(t, err)
		assert.Equal(t, 128, *res.Distance)
		assert.Equal(t, 0.5, *res.Similarity)
	})

	t.Run("wrong digest size", func(t *testing.T) {
		_, err := Nilsimsa("deadbeef", "deadbeef")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})

	t.Run("non-hex digest", func(t *testing.T) {
		_, err := Nilsimsa(strings.Repeat("zz", 32), zeros)
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})
}

func TestGenericHamming(t *testing.T) {
	t.Run("identical inputs", func(t *testing.T) {
		res, err := GenericHamming("cafe", "cafe")
		require.NoError(t, err)
		require.NotNil(t, res.Distance)
		assert.Nil(t, res.Similarity)
		assert.Equal(t, 0, *res.Distance)
	})

	t.Run("nibble-wise distance", func(t *testing.T) {
		// f ^ 0 = 1111, twice.
		res, err := GenericHamming("ff", "00")
		require.NoError(t, err)
		assert.Equal(t, 8, *res.Distance)
	})

	t.Run("uppercase hex accepted", func(t *testing.T) {
		res, err := GenericHamming("AB", "ab")
		require.NoError(t, err)
		assert.Equal(t, 0, *res.Distance)
	})

	t.Run("length mismatch is an error, not a sentinel", func(t *testing.T) {
		_, err := GenericHamming("ab", "abcd")
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("non-hex character", func(t *testing.T) {
		_, err := GenericHamming("xy", "ab")
		require.ErrorIs(t, err, ErrMalformedEncoding)
	})

	t.Run("symmetry", func(t *testing.T) {
		ab, err := GenericHamming("0123", "89ab")
		require.NoError(t, err)
		ba, err := GenericHamming("89ab", "0123")
		require.NoError(t, err)
		assert.Equal(t, *ab.Distance, *ba.Distance)
	})
}

func TestFunc(t *testing.T) {
	cases := map[Metric]MetricFunc{
		MetricBitFingerprint:  BitFingerprint,
		MetricPackedSignature: PackedSignature,
		MetricCorrelation:     Nilsimsa,
		MetricGenericFallback: GenericHamming,
	}
	for metric := range cases {
		require.NotNil(t, Func(metric))
	}

	// Unrecognized metrics degrade to the generic fallback.
	res, err := Func(Metric(99))("ff", "00")
	require.NoError(t, err)
	require.NotNil(t, res.Distance)
	assert.Equal(t, 8, *res.Distance)
}
