package sequence

import "github.com/yyyoichi/shufseq/internal/uniform"

// Window reshuffles the whole universe every pass, one Fisher-Yates step per
// call. Recurrence distance ranges from 1 to nearly 2N.
type Window struct {
	perm
}

func NewWindow(src uniform.Source) *Window {
	return &Window{perm{src: src}}
}

func (g *Window) Next() uint32 {
	g.begin()
	g.swap(g.i, g.i+g.draw(g.n-g.i))
	return g.emit()
}
