// Package uniform provides the uniform integer draw that every generator
// consumes. Sources are not safe for concurrent use.
package uniform

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Source returns a value in [0, n) uniformly at random. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Uint32N(n uint32) uint32
}

// New returns a deterministic PCG stream for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a ChaCha8 stream seeded from the operating system.
func NewRandom() Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Uint32N draws from [0, n). A bound of 0 or 1 yields 0 without consulting
// the source.
func Uint32N(src Source, n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return src.Uint32N(n)
}

// Range draws from [lo, hi]. It returns lo when hi < lo.
func Range(src Source, lo, hi uint32) uint32 {
	if hi < lo {
		return lo
	}
	return lo + Uint32N(src, hi-lo+1)
}

// Counting wraps a Source and counts the draws made through it.
type Counting struct {
	Source
	Draws uint64
}

func (c *Counting) Uint32N(n uint32) uint32 {
	c.Draws++
	return c.Source.Uint32N(n)
}
