// Package similarity provides the per-family metrics for comparing
// encoded hash outputs of locality-sensitive hashing algorithms.
package similarity

import "github.com/hashscope/hashscope/types"

// Metric identifies which comparison metric a similarity algorithm uses.
// The set is closed: every similarity-tagged algorithm maps to exactly one
// of these, and anything without a bespoke metric uses the generic
// fallback.
type Metric int

const (
	// MetricGenericFallback is byte-for-byte (nibble) Hamming distance
	// over equal-length hex strings. The zero value on purpose: ids the
	// dispatcher does not recognize land here.
	MetricGenericFallback Metric = iota

	// MetricBitFingerprint is Hamming distance over a fixed-width bit
	// fingerprint (SimHash and friends).
	MetricBitFingerprint

	// MetricPackedSignature is a positional Jaccard estimate over a
	// signature of packed 32-bit integers (MinHash and variants).
	MetricPackedSignature

	// MetricCorrelation is the Nilsimsa correlation score.
	MetricCorrelation
)

// MetricFunc computes a comparison result for two encoded hash outputs.
// Implementations are pure and safe for concurrent use.
type MetricFunc func(a, b string) (types.ComparisonResult, error)

// Func returns the implementation for a metric. Unrecognized values fall
// back to the generic metric, mirroring the dispatcher's permissive
// default.
func Func(m Metric) MetricFunc {
	switch m {
	case MetricBitFingerprint:
		return BitFingerprint
	case MetricPackedSignature:
		return PackedSignature
	case MetricCorrelation:
		return Nilsimsa
	default:
		return GenericHamming
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
