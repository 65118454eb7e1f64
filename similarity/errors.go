package similarity

import "errors"

// Common metric errors
var (
	// ErrMalformedEncoding indicates an input failed the structural
	// precondition of the selected metric (odd hex length, non-hex
	// characters, wrong chunk size).
	ErrMalformedEncoding = errors.New("malformed hash encoding")

	// ErrLengthMismatch indicates the two inputs to a length-sensitive
	// metric differ in length.
	ErrLengthMismatch = errors.New("hash length mismatch")
)
