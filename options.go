package shufseq

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"

	"github.com/yyyoichi/shufseq/internal/uniform"
	"github.com/yyyoichi/shufseq/internal/verify"
)

type Option func(*config) error

type config struct {
	source     uniform.Source
	size       uint32
	iterations int
	epsilon    float64
	logger     log.Logger
	distances  bool
}

func newConfig(opts ...Option) (*config, error) {
	c := new(config)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.source == nil {
		c.source = uniform.NewRandom()
	}
	if c.size == 0 {
		c.size = verify.DefaultSize
	}
	if c.iterations == 0 {
		c.iterations = verify.DefaultIterations
	}
	if c.epsilon == 0 {
		c.epsilon = verify.DefaultEpsilon
	}
	if c.logger == nil {
		c.logger = log.NewNopLogger()
	}
	return c, nil
}

// WithSeed makes the generator reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.source = uniform.New(seed)
		return nil
	}
}

// WithSource replaces the uniform draw. The source is owned by the
// generator afterwards and must not be shared.
func WithSource(src uniform.Source) Option {
	return func(c *config) error {
		if src == nil {
			return errors.New("nil source")
		}
		c.source = src
		return nil
	}
}

// WithVerifySize sets the universe size used by Verify. The tracking tensor
// grows with size³, so keep it small.
func WithVerifySize(n uint32) Option {
	return func(c *config) error {
		if n == 0 {
			return fmt.Errorf("verify size: %w", ErrZeroSize)
		}
		c.size = n
		return nil
	}
}

// WithIterations sets the number of passes Verify samples.
func WithIterations(k int) Option {
	return func(c *config) error {
		if k < 1 {
			return fmt.Errorf("iterations %d < 1", k)
		}
		c.iterations = k
		return nil
	}
}

// WithEpsilon sets the tolerance of destination frequencies in Verify.
func WithEpsilon(e float64) Option {
	return func(c *config) error {
		if e <= 0 || e >= 1 {
			return fmt.Errorf("epsilon %v outside (0, 1)", e)
		}
		c.epsilon = e
		return nil
	}
}

// WithLogger receives the diagnostics of Verify.
func WithLogger(l log.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithDistances keeps every distance sampled by Measure so that
// Collector.Histogram can bin them. Memory grows with the sample count.
func WithDistances() Option {
	return func(c *config) error {
		c.distances = true
		return nil
	}
}
