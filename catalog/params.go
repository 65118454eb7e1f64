package catalog

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// ValidateParameters checks user-supplied parameter values against an
// algorithm's parameter schema: required parameters must be present,
// values must match their kind, numeric values must respect bounds, and
// keys outside the schema are rejected.
func ValidateParameters(desc types.AlgorithmDescriptor, values map[string]string) error {
	specs := make(map[string]types.ParameterSpec, len(desc.Parameters))
	for _, p := range desc.Parameters {
		specs[p.ID] = p
	}

	for id := range values {
		if _, ok := specs[id]; !ok {
			return errors.WithMessagef(ErrUnknownParameter, "%q for algorithm %q", id, desc.ID)
		}
	}

	for _, p := range desc.Parameters {
		v, ok := values[p.ID]
		if !ok || v == "" {
			if p.Required {
				return errors.WithMessagef(ErrMissingParameter, "%q for algorithm %q", p.ID, desc.ID)
			}
			continue
		}
		if p.Kind != types.ParamNumber {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.WithMessagef(ErrInvalidParameter, "%q: %q is not a number", p.ID, v)
		}
		if p.Min != nil && n < *p.Min {
			return errors.WithMessagef(ErrInvalidParameter, "%q: %d is below minimum %d", p.ID, n, *p.Min)
		}
		if p.Max != nil && n > *p.Max {
			return errors.WithMessagef(ErrInvalidParameter, "%q: %d is above maximum %d", p.ID, n, *p.Max)
		}
	}
	return nil
}
