package catalog

import "errors"

// Common registry errors
var (
	// ErrUnknownAlgorithm indicates a lookup for an id that was never
	// registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrDuplicateAlgorithm indicates two descriptors share an id.
	ErrDuplicateAlgorithm = errors.New("duplicate algorithm id")

	// ErrInvalidDescriptor indicates a descriptor violates a registry
	// invariant.
	ErrInvalidDescriptor = errors.New("invalid algorithm descriptor")

	// ErrMissingParameter indicates a required parameter has no value.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownParameter indicates a value was supplied for a parameter
	// the schema does not define.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrInvalidParameter indicates a parameter value fails its spec
	// (not a number, out of bounds).
	ErrInvalidParameter = errors.New("invalid parameter value")
)
