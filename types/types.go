package types

import "context"

// Family classifies an algorithm by what its output is for.
type Family string

const (
	FamilyStandardDigest Family = "standard-digest"
	FamilyPasswordKDF    Family = "password-kdf"
	FamilyMAC            Family = "mac"
	FamilySimilarity     Family = "similarity"
)

// ParameterKind represents the input widget kind for a parameter.
type ParameterKind string

const (
	ParamText      ParameterKind = "text"
	ParamNumber    ParameterKind = "number"
	ParamMultiline ParameterKind = "multiline"
)

// ParameterSpec describes one configurable parameter of an algorithm.
// Specs are read-only after construction.
type ParameterSpec struct {
	// ID is the stable key parameter values are supplied under.
	ID string

	// Label is the human-readable name shown next to the input.
	Label string

	// Kind selects the input widget.
	Kind ParameterKind

	// Required marks parameters that must be supplied by the caller.
	Required bool

	// Min and Max bound numeric parameters. Nil means unbounded.
	Min *int
	Max *int

	// Default is the prefilled value, empty if none.
	Default string

	// GenerateRandom hints that the UI should offer a "generate random"
	// action for this parameter (salts, keys).
	GenerateRandom bool
}

// AlgorithmDescriptor holds the identity and capability metadata for one
// algorithm. Descriptors are immutable once registered.
type AlgorithmDescriptor struct {
	// ID is the unique stable lookup key.
	ID string

	DisplayName string
	Description string
	Category    string

	// OutputLengthBytes is the expected raw output size. Advisory only;
	// zero means variable-length output.
	OutputLengthBytes int

	Family Family

	// Parameters is the ordered parameter schema.
	Parameters []ParameterSpec

	// SupportsComparison is true only for similarity-family algorithms
	// the comparator can score.
	SupportsComparison bool
}

// ComparisonResult holds the outcome of comparing two hash outputs.
// At least one field is set on success; hard failures are returned as
// errors, never as an empty result.
type ComparisonResult struct {
	// Distance is lower-is-more-similar. Its unit depends on the family:
	// differing bits for Hamming-based metrics, inverted correlation for
	// Nilsimsa. Nil when the family defines no distance.
	Distance *int

	// Similarity is normalized to [0, 1], 1 = identical. Nil when the
	// family defines no normalization basis.
	Similarity *float64
}

// ComparisonRequest is the ephemeral value describing one comparison
// call. It is never persisted.
type ComparisonRequest struct {
	AlgorithmID    string
	EncodedOutput1 string
	EncodedOutput2 string

	// Encoding of both outputs. Only hex is supported; empty means hex.
	Encoding Encoding
}

// CategoryDetails describes one algorithm category for presentation.
type CategoryDetails struct {
	Name        string
	Description string
}

// Encoding identifies how a hash output string is encoded.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

// HashOutput is the result of running an algorithm through a HashEngine.
type HashOutput struct {
	// Encoded is the hash output in the stated encoding.
	Encoded string

	Encoding Encoding

	// Length is the achieved raw output length in bytes.
	Length int
}

// HashEngine defines the interface the external hashing engine must
// satisfy. This module never computes hashes itself; it only consumes
// engine outputs. The comparator requires hex-encoded outputs for
// similarity-family algorithms.
type HashEngine interface {
	// Hash runs the algorithm over input with the given parameter
	// values, which must satisfy the descriptor's parameter schema.
	Hash(ctx context.Context, algorithmID string, input []byte, params map[string]string) (HashOutput, error)
}
