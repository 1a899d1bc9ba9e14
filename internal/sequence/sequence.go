// Package sequence implements the bounded-randomness generators. Every
// generator emits indices in [0, N); the permutation based ones emit each
// index exactly once per pass of N calls.
package sequence

import (
	"errors"

	"github.com/yyyoichi/shufseq/internal/uniform"
)

var (
	ErrZeroSize       = errors.New("universe size must be positive")
	ErrNotInitialized = errors.New("generator is not initialized")
)

// Generator is the call protocol shared by all algorithms: Init once, Next
// any number of times, Release once. A Generator is not safe for concurrent use.
type Generator interface {
	Init(n uint32) error
	Next() uint32
	Release()
}

// Passer reports how many passes have begun since Init.
type Passer interface {
	Pass() uint64
}

// Interlacer exposes the interlace width of the current pass.
type Interlacer interface {
	Interlace() uint32
}

// Snapshotter returns a copy of the working permutation.
type Snapshotter interface {
	Snapshot() []uint32
}

// perm holds the working permutation and cursor shared by the permutation
// based generators.
type perm struct {
	src  uniform.Source
	t    []uint32
	n    uint32
	i    uint32
	pass uint64
}

func (p *perm) Init(n uint32) error {
	if n == 0 {
		return ErrZeroSize
	}
	p.t = make([]uint32, n)
	for i := range p.t {
		p.t[i] = uint32(i)
	}
	p.n = n
	p.i = 0
	p.pass = 0
	return nil
}

func (p *perm) Release() {
	p.t = nil
	p.n, p.i, p.pass = 0, 0, 0
}

func (p *perm) Pass() uint64 { return p.pass }

func (p *perm) Snapshot() []uint32 {
	out := make([]uint32, len(p.t))
	copy(out, p.t)
	return out
}

// begin wraps the cursor and reports whether a new pass starts with this call.
func (p *perm) begin() bool {
	if p.t == nil {
		panic(ErrNotInitialized)
	}
	if p.i == p.n {
		p.i = 0
	}
	if p.i == 0 {
		p.pass++
		return true
	}
	return false
}

func (p *perm) emit() uint32 {
	v := p.t[p.i]
	p.i++
	return v
}

func (p *perm) swap(i, j uint32) {
	p.t[i], p.t[j] = p.t[j], p.t[i]
}

// shuffle runs an eager Fisher-Yates over [from, to).
func (p *perm) shuffle(from, to uint32) {
	for k := from; k < to; k++ {
		p.swap(k, k+p.draw(to-k))
	}
}

func (p *perm) draw(n uint32) uint32 {
	return uniform.Uint32N(p.src, n)
}

func (p *perm) rangeIncl(lo, hi uint32) uint32 {
	return uniform.Range(p.src, lo, hi)
}

// frac returns n*num/den without overflowing uint32.
func frac(n, num, den uint32) uint32 {
	return uint32(uint64(n) * uint64(num) / uint64(den))
}
