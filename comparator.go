// Package hashscope scores the similarity of locality-sensitive hash
// outputs, dispatching each algorithm to the metric its family defines.
// Hash outputs themselves come from an external hashing engine; this
// package only consumes them.
package hashscope

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/hashscope/hashscope/catalog"
	"github.com/hashscope/hashscope/options"
	"github.com/hashscope/hashscope/similarity"
	"github.com/hashscope/hashscope/types"
)

// Comparator compares two hex-encoded hash outputs for similarity. It is
// stateless apart from its registry and safe for concurrent use.
type Comparator struct {
	catalog *catalog.Registry
}

// AsyncCompareResult holds the result of an async Compare operation.
type AsyncCompareResult struct {
	Result types.ComparisonResult
	Error  error
}

// New creates a Comparator with functional options. With no options it
// uses the default algorithm catalog.
func New(opts ...options.Option) (*Comparator, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewComparator(cfg.Catalog)
}

// NewComparator creates a Comparator over the given registry.
func NewComparator(registry *catalog.Registry) (*Comparator, error) {
	if registry == nil {
		return nil, errors.New("registry cannot be nil")
	}
	return &Comparator{catalog: registry}, nil
}

// Catalog returns the registry this comparator resolves algorithms
// against.
func (c *Comparator) Catalog() *catalog.Registry {
	return c.catalog
}

// bespokeMetrics maps similarity algorithm ids to their family metric.
// Similarity-tagged ids outside this table, and ids the registry does not
// know at all, use the generic fallback.
var bespokeMetrics = map[string]similarity.Metric{
	"simhash":      similarity.MetricBitFingerprint,
	"minhash":      similarity.MetricPackedSignature,
	"bbit-minhash": similarity.MetricPackedSignature,
	"superminhash": similarity.MetricPackedSignature,
	"nilsimsa":     similarity.MetricCorrelation,
}

// metricFor resolves an algorithm id to its metric. Unknown algorithms
// are not an error here: they degrade to the generic Hamming metric.
func (c *Comparator) metricFor(algorithmID string) similarity.Metric {
	m, ok := bespokeMetrics[algorithmID]
	if !ok {
		return similarity.MetricGenericFallback
	}
	d, err := c.catalog.Get(algorithmID)
	if err != nil || !d.SupportsComparison {
		return similarity.MetricGenericFallback
	}
	return m
}

// Compare scores two hex-encoded outputs of the given algorithm. The
// work is CPU-bound and synchronous; malformed or mismatched inputs are
// returned as errors, never as sentinel scores.
func (c *Comparator) Compare(ctx context.Context, algorithmID, output1, output2 string) (types.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return types.ComparisonResult{}, err
	}
	return similarity.Func(c.metricFor(algorithmID))(output1, output2)
}

// CompareRequest scores a ComparisonRequest. Outputs must be
// hex-encoded; base64 engine outputs have to be transcoded by the caller
// first.
func (c *Comparator) CompareRequest(ctx context.Context, req types.ComparisonRequest) (types.ComparisonResult, error) {
	if req.Encoding != "" && req.Encoding != types.EncodingHex {
		return types.ComparisonResult{}, errors.WithMessagef(similarity.ErrMalformedEncoding,
			"unsupported output encoding %q", req.Encoding)
	}
	return c.Compare(ctx, req.AlgorithmID, req.EncodedOutput1, req.EncodedOutput2)
}

// CompareAsync runs Compare off the calling goroutine.
// Returns a channel that will receive the result when complete.
func (c *Comparator) CompareAsync(ctx context.Context, algorithmID, output1, output2 string) <-chan AsyncCompareResult {
	resultCh := make(chan AsyncCompareResult, 1)
	go func() {
		defer close(resultCh)
		result, err := c.Compare(ctx, algorithmID, output1, output2)
		resultCh <- AsyncCompareResult{Result: result, Error: err}
	}()
	return resultCh
}

var (
	defaultComparator     *Comparator
	defaultComparatorOnce sync.Once
)

// Compare scores two outputs using a shared comparator over the default
// catalog.
func Compare(ctx context.Context, algorithmID, output1, output2 string) (types.ComparisonResult, error) {
	defaultComparatorOnce.Do(func() {
		defaultComparator = &Comparator{catalog: catalog.Default()}
	})
	return defaultComparator.Compare(ctx, algorithmID, output1, output2)
}
