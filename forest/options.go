package forest

import (
	"github.com/YuminosukeSato/compactforest/pkg/log"
)

const defaultParallelThreshold = 256

type config struct {
	batchSize         int
	logger            log.Logger
	parallelThreshold int
}

// Option configures compilers and matrix scoring.
type Option func(*config)

// WithBatchSize sets how many trees a BoostedPredictor advances together.
// Values are clamped to [1, MaxBatchSize].
func WithBatchSize(n int) Option {
	return func(c *config) {
		c.batchSize = max(1, min(n, MaxBatchSize))
	}
}

// WithLogger replaces the logger used to report compilation.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithParallelThreshold sets the row count above which PredictMatrix scores
// rows on several goroutines.
func WithParallelThreshold(rows int) Option {
	return func(c *config) {
		c.parallelThreshold = rows
	}
}

func newConfig(component string, opts []Option) config {
	c := config{
		batchSize:         DefaultBatchSize,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.GetLoggerWithName(component)
	}
	return c
}
