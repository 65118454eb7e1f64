// Package options provides functional options for configuring Comparator instances.
package options

import (
	"errors"

	"github.com/hashscope/hashscope/catalog"
	"github.com/hashscope/hashscope/types"
)

// Option represents a configuration option for a Comparator
type Option func(*Config) error

// Config holds the configuration for building a Comparator
type Config struct {
	Catalog *catalog.Registry
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Catalog: catalog.Default(),
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Catalog == nil {
		return errors.New("catalog is required - use WithCatalog or WithDescriptors")
	}
	return nil
}

// WithCatalog sets a pre-built algorithm registry, replacing the default
// static catalog. Useful for testing against a synthetic registry.
func WithCatalog(r *catalog.Registry) Option {
	return func(cfg *Config) error {
		if r == nil {
			return errors.New("catalog cannot be nil")
		}
		cfg.Catalog = r
		return nil
	}
}

// WithDescriptors builds a registry from the given descriptors and uses it
// in place of the default catalog.
func WithDescriptors(descs []types.AlgorithmDescriptor) Option {
	return func(cfg *Config) error {
		r, err := catalog.New(descs)
		if err != nil {
			return err
		}
		cfg.Catalog = r
		return nil
	}
}
