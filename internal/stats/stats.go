// Package stats measures how far apart successive appearances of the same
// value are in a generated sequence.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/yyyoichi/shufseq/internal/sequence"
)

var (
	ErrNoSamples   = errors.New("no samples collected")
	ErrNoDistances = errors.New("distances were not kept")
)

// Collector accumulates recurrence distances. The summary is kept as
// running moments; individual distances are only stored when the collector
// was created with keep set, since they grow with the sample count.
type Collector struct {
	n         uint32
	count     int
	mean, m2  float64
	min, max  uint64
	keep      bool
	distances []float64
}

func NewCollector(n uint32, keep bool) *Collector {
	return &Collector{n: n, keep: keep}
}

func (c *Collector) Add(distance uint64) {
	if c.count == 0 || distance < c.min {
		c.min = distance
	}
	if c.count == 0 || distance > c.max {
		c.max = distance
	}
	c.count++
	x := float64(distance)
	delta := x - c.mean
	c.mean += delta / float64(c.count)
	c.m2 += delta * (x - c.mean)
	if c.keep {
		c.distances = append(c.distances, x)
	}
}

func (c *Collector) Count() int { return c.count }

// Distances returns the collected distances in sampling order, or nil when
// they were not kept.
func (c *Collector) Distances() []float64 { return c.distances }

// Summary computes the distribution of the collected distances. The
// standard deviation is the population one.
func (c *Collector) Summary() (Summary, error) {
	if c.count == 0 {
		return Summary{}, ErrNoSamples
	}
	return Summary{
		N:      c.n,
		Count:  c.count,
		Min:    c.min,
		Max:    c.max,
		Avg:    c.mean,
		StdDev: math.Sqrt(c.m2 / float64(c.count)),
	}, nil
}

// Histogram counts the distances into bins of equal width spanning
// [min, max+1).
func (c *Collector) Histogram(bins int) (dividers, counts []float64, err error) {
	if c.count == 0 {
		return nil, nil, ErrNoSamples
	}
	if !c.keep {
		return nil, nil, ErrNoDistances
	}
	if bins < 1 {
		return nil, nil, fmt.Errorf("bins %d < 1", bins)
	}
	x := slices.Clone(c.distances)
	slices.Sort(x)
	dividers = floats.Span(make([]float64, bins+1), floats.Min(x), floats.Max(x)+1)
	counts = stat.Histogram(nil, dividers, x, nil)
	return dividers, counts, nil
}

// Summary is the recurrence distance distribution for a universe of size N.
type Summary struct {
	N      uint32
	Count  int
	Min    uint64
	Max    uint64
	Avg    float64
	StdDev float64
}

func (s Summary) MinN() float64 { return float64(s.Min) / float64(s.N) }
func (s Summary) MaxN() float64 { return float64(s.Max) / float64(s.N) }
func (s Summary) AvgN() float64 { return s.Avg / float64(s.N) }

// StdN is the standard deviation relative to the average distance.
func (s Summary) StdN() float64 {
	if s.Avg == 0 {
		return 0
	}
	return s.StdDev / s.Avg
}

func (s Summary) Judge() Judgments {
	return Judgments{
		Min: JudgeDistance(s.MinN()),
		Max: JudgeDistance(s.MaxN()),
		Avg: JudgeDistance(s.AvgN()),
		Std: JudgeSpread(s.StdN()),
	}
}

// Run drives g through k recurrences of its first value into c. It calls
// Init with the universe size of c before and Release after sampling.
func Run(ctx context.Context, g sequence.Generator, c *Collector, k int) error {
	if err := g.Init(c.n); err != nil {
		return err
	}
	defer g.Release()
	if c.keep {
		c.distances = slices.Grow(c.distances, k)
	}

	x := g.Next()
	for i := range k {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		distance := uint64(1)
		for g.Next() != x {
			distance++
		}
		c.Add(distance)
	}
	return nil
}
