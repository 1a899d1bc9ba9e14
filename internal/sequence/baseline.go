package sequence

import "github.com/yyyoichi/shufseq/internal/uniform"

// Random draws every value independently. It has no passes.
type Random struct {
	src uniform.Source
	n   uint32
}

func NewRandom(src uniform.Source) *Random {
	return &Random{src: src}
}

func (g *Random) Init(n uint32) error {
	if n == 0 {
		return ErrZeroSize
	}
	g.n = n
	return nil
}

func (g *Random) Next() uint32 {
	if g.n == 0 {
		panic(ErrNotInitialized)
	}
	return uniform.Uint32N(g.src, g.n)
}

func (g *Random) Release() { g.n = 0 }

// Order repeats the identity order forever.
type Order struct {
	perm
}

func NewOrder() *Order {
	return &Order{}
}

func (g *Order) Next() uint32 {
	g.begin()
	return g.emit()
}
