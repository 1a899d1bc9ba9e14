// Package verify checks the disjoint dual-shuffle by Monte Carlo sampling:
// every pass must be a permutation with a constant interlace width, values
// must stay inside their shuffle, and every position of a shuffle must be an
// equally likely destination.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/shufseq/internal/sequence"
)

var (
	ErrInvariant     = errors.New("invariant violated")
	ErrNotInterlacer = errors.New("generator does not expose its interlace width and permutation")
)

const (
	DefaultSize       = 12
	DefaultIterations = 1_000_000
	DefaultEpsilon    = 0.005
)

// Target is a generator the harness can inspect between calls.
type Target interface {
	sequence.Generator
	sequence.Interlacer
	sequence.Snapshotter
}

type Config struct {
	Size       uint32
	Iterations int
	Epsilon    float64
	Logger     log.Logger
}

func (c *Config) defaults() {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Epsilon <= 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
}

// Anomaly is a destination frequency outside the tolerance. It is reported,
// not fatal: sampling noise can produce it.
type Anomaly struct {
	Interlace uint32
	Was, Is   int
	Count     int
	Value     float64
	Expected  float64
}

type Result struct {
	Size       uint32
	Iterations int
	// Count[d] is the number of passes drawn with interlace width d.
	Count []int
	// Track[d].At(was, is) counts the passes with width d in which the value
	// at position was ended at position is.
	Track     []*mat.Dense
	Anomalies []Anomaly
}

// Frequencies returns Track[d] normalized by the number of passes with
// width d.
func (r *Result) Frequencies(d uint32) *mat.Dense {
	var f mat.Dense
	f.CloneFrom(r.Track[d])
	if c := r.Count[d]; c > 0 {
		f.Scale(1/float64(c), &f)
	}
	return &f
}

// Widths returns the interlace widths a correct generator of this size draws.
func (r *Result) Widths() []uint32 {
	return widths(r.Size)
}

func widths(n uint32) []uint32 {
	h := n / 2
	if h/2 == 0 {
		return []uint32{0}
	}
	out := make([]uint32, 0, h/2)
	for d := uint32(1); d <= h/2; d++ {
		out = append(out, d)
	}
	return out
}

// InFirst reports whether position pos belongs to the first shuffle
// (A1 ∪ B1) of a universe of size n with interlace width d.
func InFirst(n, d, pos uint32) bool {
	h := n / 2
	return pos < h-d || (pos >= h && pos < h+d)
}

// Run drives g through cfg.Iterations passes. Structural violations stop
// the run with an error wrapping ErrInvariant.
func Run(ctx context.Context, gen sequence.Generator, cfg Config) (*Result, error) {
	g, ok := gen.(Target)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotInterlacer, gen)
	}
	cfg.defaults()
	n := cfg.Size
	if err := g.Init(n); err != nil {
		return nil, err
	}
	defer g.Release()

	maxD := n / 2 / 2
	r := &Result{
		Size:       n,
		Iterations: cfg.Iterations,
		Count:      make([]int, maxD+1),
		Track:      make([]*mat.Dense, maxD+1),
	}
	for d := range r.Track {
		r.Track[d] = mat.NewDense(int(n), int(n), nil)
	}

	emitted := make([]bool, n)
	dest := make([]int, n)
	for k := range cfg.Iterations {
		if k%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		before := g.Snapshot()
		clear(emitted)
		var d uint32
		for i := range n {
			v := g.Next()
			if i == 0 {
				d = g.Interlace()
				if d > maxD || (maxD > 0 && d == 0) {
					return r, fmt.Errorf("%w: pass %d: interlace width %d outside [1, %d]", ErrInvariant, k, d, maxD)
				}
			}
			if got := g.Interlace(); got != d {
				return r, fmt.Errorf("%w: pass %d: interlace width changed from %d to %d at call %d", ErrInvariant, k, d, got, i)
			}
			if v >= n || emitted[v] {
				return r, fmt.Errorf("%w: pass %d: value %d emitted twice or out of range", ErrInvariant, k, v)
			}
			emitted[v] = true
		}
		r.Count[d]++

		after := g.Snapshot()
		for i := range dest {
			dest[i] = -1
		}
		for is, v := range after {
			if v >= n || dest[v] != -1 {
				return r, fmt.Errorf("%w: pass %d: duplicate value %d in permutation", ErrInvariant, k, v)
			}
			dest[v] = is
		}
		track := r.Track[d]
		for was, v := range before {
			is := dest[v]
			track.Set(was, is, track.At(was, is)+1)
		}
	}

	return r, r.check(cfg)
}

func (r *Result) check(cfg Config) error {
	n := r.Size
	h := n / 2
	for _, d := range widths(n) {
		if r.Count[d] == 0 {
			return fmt.Errorf("%w: interlace width %d never drawn in %d passes", ErrInvariant, d, r.Iterations)
		}
		track := r.Track[d]
		for was := range n {
			for is := range n {
				c := int(track.At(int(was), int(is)))
				first := InFirst(n, d, was)
				if first != InFirst(n, d, is) {
					if c != 0 {
						return fmt.Errorf("%w: interlace width %d: position %d reached %d across shuffles %d times", ErrInvariant, d, was, is, c)
					}
					continue
				}
				if c == 0 {
					continue
				}
				expected := 1 / float64(n-h)
				if first {
					expected = 1 / float64(h)
				}
				value := float64(c) / float64(r.Count[d])
				if math.Abs(value-expected) >= cfg.Epsilon {
					a := Anomaly{Interlace: d, Was: int(was), Is: int(is), Count: c, Value: value, Expected: expected}
					r.Anomalies = append(r.Anomalies, a)
					level.Warn(cfg.Logger).Log("msg", "BAD", "interlace", d, "was", was, "is", is,
						"count", c, "value", value, "expected", expected)
				}
			}
		}
	}
	return nil
}
