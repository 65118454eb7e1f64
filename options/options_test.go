package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashscope/hashscope/catalog"
	"github.com/hashscope/hashscope/types"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Same(t, catalog.Default(), cfg.Catalog)
}

func TestWithCatalog(t *testing.T) {
	r, err := catalog.New([]types.AlgorithmDescriptor{
		{ID: "x", Category: "Test", Family: types.FamilySimilarity, SupportsComparison: true},
	})
	require.NoError(t, err)

	cfg := NewConfig()
	require.NoError(t, cfg.Apply(WithCatalog(r)))
	assert.Same(t, r, cfg.Catalog)

	require.Error(t, cfg.Apply(WithCatalog(nil)))
}

func TestWithDescriptors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Apply(WithDescriptors([]types.AlgorithmDescriptor{
		{ID: "x", Category: "Test", Family: types.FamilySimilarity, SupportsComparison: true},
	}))
	require.NoError(t, err)

	_, err = cfg.Catalog.Get("x")
	require.NoError(t, err)

	// Invalid descriptor sets surface the registry's error.
	err = cfg.Apply(WithDescriptors([]types.AlgorithmDescriptor{
		{ID: "dup", Category: "Test", Family: types.FamilyStandardDigest},
		{ID: "dup", Category: "Test", Family: types.FamilyStandardDigest},
	}))
	require.ErrorIs(t, err, catalog.ErrDuplicateAlgorithm)
}
