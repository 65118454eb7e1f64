package hashscope

// Qualitative similarity tiers rendered next to a score.
const (
	LabelHigh     = "high"
	LabelModerate = "moderate"
	LabelLow      = "low"
)

// SimilarityLabel maps a normalized similarity score to its qualitative
// tier: above 0.7 is high, above 0.4 is moderate, everything else low.
func SimilarityLabel(score float64) string {
	switch {
	case score > 0.7:
		return LabelHigh
	case score > 0.4:
		return LabelModerate
	default:
		return LabelLow
	}
}
