package sequence

import "github.com/yyyoichi/shufseq/internal/uniform"

// Split shuffles the zones [0, n1) and [n1, N) independently and
// incrementally. Zone membership is fixed for a pass, so a value never
// recurs within fewer than min(n1, N-n1) calls.
type Split struct {
	perm
	randomized bool
	n1         uint32
}

// NewSplit splits at N/2.
func NewSplit(src uniform.Source) *Split {
	return &Split{perm: perm{src: src}}
}

// NewRandomSplit draws the split point from [N/4, 3N/4] at the start of
// every pass.
func NewRandomSplit(src uniform.Source) *Split {
	return &Split{perm: perm{src: src}, randomized: true}
}

// SplitPoint returns n1 of the current pass.
func (g *Split) SplitPoint() uint32 { return g.n1 }

func (g *Split) Next() uint32 {
	if g.begin() {
		if g.randomized {
			g.n1 = g.rangeIncl(g.n/4, frac(g.n, 3, 4))
		} else {
			g.n1 = g.n / 2
		}
	}
	end := g.n1
	if g.i >= g.n1 {
		end = g.n
	}
	g.swap(g.i, g.i+g.draw(end-g.i))
	return g.emit()
}
