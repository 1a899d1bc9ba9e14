package sequence

import "github.com/yyyoichi/shufseq/internal/uniform"

// Overlap shuffles both halves and then the central band [N/4, 3N/4) at the
// start of every pass. The whole pass is materialized before the first value
// is returned.
type Overlap struct {
	perm
}

func NewOverlap(src uniform.Source) *Overlap {
	return &Overlap{perm{src: src}}
}

func (g *Overlap) Next() uint32 {
	if g.begin() {
		h := g.n / 2
		g.shuffle(0, h)
		g.shuffle(h, g.n)
		g.shuffle(g.n/4, frac(g.n, 3, 4))
	}
	return g.emit()
}
