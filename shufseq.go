// Package shufseq provides interchangeable generators of bounded-randomness
// index sequences: each index of [0, N) recurs roughly every N calls, with
// the regularity of the recurrence depending on the algorithm.
package shufseq

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yyyoichi/shufseq/internal/sequence"
	"github.com/yyyoichi/shufseq/internal/stats"
	"github.com/yyyoichi/shufseq/internal/verify"
)

var (
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrZeroSize         = sequence.ErrZeroSize
	ErrInvariant        = verify.ErrInvariant
)

type (
	Generator    = sequence.Generator
	Collector    = stats.Collector
	Summary      = stats.Summary
	VerifyResult = verify.Result
)

func unknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// New returns the named generator. It still has to be initialized with Init.
func New(name string, opts ...Option) (Generator, error) {
	e, ok := generators[name]
	if !ok {
		return nil, unknown(name)
	}
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return e.new(c.source), nil
}

// Measure drives the named generator over a universe of size n and collects
// k recurrence distances of its first value. Individual distances are only
// kept with WithDistances.
func Measure(ctx context.Context, name string, n uint32, k int, opts ...Option) (*Collector, error) {
	e, ok := generators[name]
	if !ok {
		return nil, unknown(name)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	c := stats.NewCollector(n, cfg.distances)
	if err := stats.Run(ctx, e.new(cfg.source), c, k); err != nil {
		return nil, err
	}
	return c, nil
}

// Verify samples the disjoint generator and checks its invariants. It
// returns an error wrapping ErrInvariant when one is violated; frequency
// anomalies are only reported in the result and the logger.
func Verify(ctx context.Context, opts ...Option) (*VerifyResult, error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return verify.Run(ctx, sequence.NewDisjoint(c.source), verify.Config{
		Size:       c.size,
		Iterations: c.iterations,
		Epsilon:    c.epsilon,
		Logger:     c.logger,
	})
}

// Print writes k values of the named generator as "index value" lines,
// skipping the first value.
func Print(w io.Writer, name string, n uint32, k int, opts ...Option) error {
	g, err := New(name, opts...)
	if err != nil {
		return err
	}
	if err := g.Init(n); err != nil {
		return err
	}
	defer g.Release()

	bw := bufio.NewWriter(w)
	g.Next()
	for i := range k {
		if _, err := fmt.Fprintf(bw, "%d %d\n", i, g.Next()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
