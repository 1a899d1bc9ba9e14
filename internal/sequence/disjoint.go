package sequence

import "github.com/yyyoichi/shufseq/internal/uniform"

// Disjoint runs two disjoint incremental shuffles per pass around the
// midpoint h = N/2. With d the interlace width of the pass, the zones are
//
//	A1 = [0, h-d)  A2 = [h-d, h)  B1 = [h, h+d)  B2 = [h+d, N)
//
// and the first shuffle mixes A1 with B1 while the second mixes A2 with B2.
// d is drawn from [1, h/2] at every pass start, so values drift between the
// halves over several passes.
//
// When h/2 < 1 (N < 4) d is 0 and the generator behaves as a split at N/2.
// Odd N gives the extra element to the second shuffle.
type Disjoint struct {
	perm
	d uint32
}

func NewDisjoint(src uniform.Source) *Disjoint {
	return &Disjoint{perm: perm{src: src}}
}

// Interlace returns the interlace width d of the current pass.
func (g *Disjoint) Interlace() uint32 { return g.d }

func (g *Disjoint) Next() uint32 {
	h := g.n / 2
	if g.begin() {
		g.d = 0
		if h/2 >= 1 {
			g.d = g.rangeIncl(1, h/2)
		}
	}
	first, k := g.local(g.i)
	size := g.n - h
	if first {
		size = h
	}
	j := g.global(first, k+g.draw(size-k))
	g.swap(g.i, j)
	return g.emit()
}

// InFirst reports whether position i belongs to the first shuffle (A1 ∪ B1)
// for the current interlace width.
func (g *Disjoint) InFirst(i uint32) bool {
	first, _ := g.local(i)
	return first
}

// local maps a global position to its shuffle and the position inside it.
func (g *Disjoint) local(i uint32) (first bool, k uint32) {
	h, d := g.n/2, g.d
	switch {
	case i < h-d:
		return true, i
	case i < h:
		return false, i - (h - d)
	case i < h+d:
		return true, i - d
	default:
		return false, i - h
	}
}

func (g *Disjoint) global(first bool, k uint32) uint32 {
	h, d := g.n/2, g.d
	if first {
		if k < h-d {
			return k
		}
		return k + d
	}
	if k < d {
		return k + h - d
	}
	return k + h
}
