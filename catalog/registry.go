// Package catalog holds the algorithm registry: an immutable, queryable
// table of descriptor metadata for every supported hash, checksum, and
// similarity algorithm.
package catalog

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/types"
)

// Registry is an immutable set of algorithm descriptors. All methods are
// pure reads; a Registry is safe for concurrent use without locking.
type Registry struct {
	byID  map[string]types.AlgorithmDescriptor
	order []string
}

// New builds a registry from descriptors, preserving registration order.
// It rejects duplicate ids, comparison support outside the similarity
// family, and categories whose slugs collide (which would break slug
// resolution).
func New(descs []types.AlgorithmDescriptor) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]types.AlgorithmDescriptor, len(descs)),
		order: make([]string, 0, len(descs)),
	}
	slugs := make(map[string]string)

	for _, d := range descs {
		if d.ID == "" {
			return nil, errors.WithMessage(ErrInvalidDescriptor, "empty id")
		}
		if _, ok := r.byID[d.ID]; ok {
			return nil, errors.WithMessagef(ErrDuplicateAlgorithm, "%q", d.ID)
		}
		if d.SupportsComparison && d.Family != types.FamilySimilarity {
			return nil, errors.WithMessagef(ErrInvalidDescriptor,
				"%q supports comparison but is %s, not %s", d.ID, d.Family, types.FamilySimilarity)
		}
		slug := CategorySlug(d.Category)
		if existing, ok := slugs[slug]; ok && existing != d.Category {
			return nil, errors.WithMessagef(ErrInvalidDescriptor,
				"categories %q and %q share slug %q", existing, d.Category, slug)
		}
		slugs[slug] = d.Category

		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r, nil
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry built from the static catalog. It is
// constructed once per process and shared; the static catalog is known
// good, so construction cannot fail.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(algorithms)
		if err != nil {
			panic(errors.WithMessage(err, "static catalog is invalid"))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Get returns the descriptor for id. There is no default descriptor:
// unknown ids return ErrUnknownAlgorithm.
func (r *Registry) Get(id string) (types.AlgorithmDescriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return types.AlgorithmDescriptor{}, errors.WithMessagef(ErrUnknownAlgorithm, "%q", id)
	}
	return d, nil
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns all algorithm ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListByCategory groups all registered ids by category. Ids within a
// category keep registration order, not alphabetical order.
func (r *Registry) ListByCategory() map[string][]string {
	out := make(map[string][]string)
	for _, id := range r.order {
		d := r.byID[id]
		out[d.Category] = append(out[d.Category], id)
	}
	return out
}

// Categories returns category names in first-seen registration order.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range r.order {
		c := r.byID[id].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// SlugToCategory resolves a slug back to its registered category name.
// Unknown slugs are returned unchanged; this leniency is deliberate so
// that ad-hoc category pages keep working.
func (r *Registry) SlugToCategory(slug string) string {
	for _, c := range r.Categories() {
		if CategorySlug(c) == slug {
			return c
		}
	}
	return slug
}
