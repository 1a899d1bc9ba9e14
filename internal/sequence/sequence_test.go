package sequence

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyyoichi/shufseq/internal/uniform"
)

type factory struct {
	name string
	new  func(src uniform.Source) Generator
}

var permFactories = []factory{
	{"order", func(uniform.Source) Generator { return NewOrder() }},
	{"shuffle", func(src uniform.Source) Generator { return NewWindow(src) }},
	{"split", func(src uniform.Source) Generator { return NewSplit(src) }},
	{"split_r", func(src uniform.Source) Generator { return NewRandomSplit(src) }},
	{"disjoint", func(src uniform.Source) Generator { return NewDisjoint(src) }},
	{"overlap", func(src uniform.Source) Generator { return NewOverlap(src) }},
}

func pass(g Generator, n uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func identity(n uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

func TestPermutationPerPass(t *testing.T) {
	sizes := []uint32{1, 2, 3, 4, 5, 7, 12, 13, 100}
	for _, f := range permFactories {
		for _, n := range sizes {
			g := f.new(uniform.New(uint64(n)))
			require.NoError(t, g.Init(n))
			for p := range 50 {
				got := pass(g, n)
				slices.Sort(got)
				require.Equal(t, identity(n), got, "%s n=%d pass=%d", f.name, n, p)
				require.ElementsMatch(t, identity(n), g.(Snapshotter).Snapshot())
			}
			g.Release()
		}
	}
}

func TestRoundTrip12(t *testing.T) {
	for _, f := range permFactories {
		t.Run(f.name, func(t *testing.T) {
			g := f.new(uniform.New(12))
			require.NoError(t, g.Init(12))
			defer g.Release()
			for range 3 {
				assert.ElementsMatch(t, identity(12), pass(g, 12))
			}
		})
	}
}

func TestSingleElement(t *testing.T) {
	gens := []Generator{NewRandom(uniform.New(1))}
	for _, f := range permFactories {
		gens = append(gens, f.new(uniform.New(1)))
	}
	for _, g := range gens {
		require.NoError(t, g.Init(1))
		for range 100 {
			require.Equal(t, uint32(0), g.Next(), "%T", g)
		}
		g.Release()
	}
}

func TestInitZero(t *testing.T) {
	gens := []Generator{NewRandom(uniform.New(1))}
	for _, f := range permFactories {
		gens = append(gens, f.new(uniform.New(1)))
	}
	for _, g := range gens {
		assert.ErrorIs(t, g.Init(0), ErrZeroSize, "%T", g)
		assert.PanicsWithValue(t, ErrNotInitialized, func() { g.Next() }, "%T", g)
	}
}

func TestNextAfterRelease(t *testing.T) {
	g := NewWindow(uniform.New(1))
	require.NoError(t, g.Init(4))
	g.Next()
	g.Release()
	assert.Panics(t, func() { g.Next() })
}

func TestPassBoundary(t *testing.T) {
	for _, f := range permFactories {
		t.Run(f.name, func(t *testing.T) {
			const n = 10
			g := f.new(uniform.New(7))
			require.NoError(t, g.Init(n))
			p := g.(Passer)
			assert.Zero(t, p.Pass())
			g.Next()
			require.Equal(t, uint64(1), p.Pass())
			for range n - 1 {
				g.Next()
			}
			require.Equal(t, uint64(1), p.Pass(), "no new pass within N calls")
			g.Next()
			require.Equal(t, uint64(2), p.Pass(), "call N+1 starts exactly one new pass")
		})
	}
}

func TestRandomizationOnlyAtPassStart(t *testing.T) {
	// split_r draws its split point once per pass on top of one draw per call.
	const n = 40
	src := &uniform.Counting{Source: uniform.New(9)}
	g := NewRandomSplit(src)
	require.NoError(t, g.Init(n))
	g.Next()
	n1 := g.SplitPoint()
	require.GreaterOrEqual(t, n1, uint32(n/4))
	require.LessOrEqual(t, n1, uint32(3*n/4))
	for range n - 1 {
		g.Next()
		require.Equal(t, n1, g.SplitPoint())
	}
	// each zone skips exactly one draw (its last element), plus the split draw
	assert.Equal(t, uint64(n-2+1), src.Draws)
}

func TestSplitZones(t *testing.T) {
	for _, randomized := range []bool{false, true} {
		const n = 30
		var g *Split
		if randomized {
			g = NewRandomSplit(uniform.New(5))
		} else {
			g = NewSplit(uniform.New(5))
		}
		require.NoError(t, g.Init(n))
		for range 100 {
			before := g.Snapshot()
			got := pass(g, n)
			n1 := g.SplitPoint()
			if !randomized {
				require.Equal(t, uint32(n/2), n1)
			}
			assert.ElementsMatch(t, before[:n1], got[:n1])
			assert.ElementsMatch(t, before[n1:], got[n1:])
		}
	}
}

func TestDisjoint(t *testing.T) {
	t.Run("interlace constant within pass", func(t *testing.T) {
		for _, n := range []uint32{4, 5, 12, 13, 64} {
			g := NewDisjoint(uniform.New(uint64(n)))
			require.NoError(t, g.Init(n))
			h := n / 2
			seen := map[uint32]bool{}
			for range 500 {
				g.Next()
				d := g.Interlace()
				require.GreaterOrEqual(t, d, uint32(1))
				require.LessOrEqual(t, d, h/2)
				seen[d] = true
				for range n - 1 {
					g.Next()
					require.Equal(t, d, g.Interlace())
				}
			}
			assert.Len(t, seen, int(h/2), "n=%d every width is drawn", n)
		}
	})
	t.Run("zone confinement", func(t *testing.T) {
		for _, n := range []uint32{4, 7, 12, 13, 50} {
			g := NewDisjoint(uniform.New(uint64(n) + 100))
			require.NoError(t, g.Init(n))
			for range 300 {
				before := g.Snapshot()
				pass(g, n)
				after := g.Snapshot()
				from := make(map[uint32]uint32, n)
				for pos, v := range before {
					from[v] = uint32(pos)
				}
				for pos, v := range after {
					require.Equal(t, g.InFirst(from[v]), g.InFirst(uint32(pos)),
						"n=%d d=%d value %d moved %d -> %d", n, g.Interlace(), v, from[v], pos)
				}
			}
		}
	})
	t.Run("zones", func(t *testing.T) {
		g := &Disjoint{perm: perm{n: 12}, d: 2}
		// A1=[0,4) A2=[4,6) B1=[6,8) B2=[8,12)
		want := []bool{true, true, true, true, false, false, true, true, false, false, false, false}
		for i, w := range want {
			assert.Equal(t, w, g.InFirst(uint32(i)), "position %d", i)
		}
		for i := range uint32(12) {
			first, k := g.local(i)
			assert.Equal(t, i, g.global(first, k))
		}
	})
	t.Run("small universe", func(t *testing.T) {
		for _, n := range []uint32{1, 2, 3} {
			g := NewDisjoint(uniform.New(1))
			require.NoError(t, g.Init(n))
			for range 20 {
				assert.ElementsMatch(t, identity(n), pass(g, n))
				assert.Zero(t, g.Interlace())
			}
		}
	})
}

func TestOverlapBands(t *testing.T) {
	// Values of the first quarter can only reach the central band, never the
	// last quarter, within one pass.
	const n = 16
	g := NewOverlap(uniform.New(11))
	require.NoError(t, g.Init(n))
	for range 200 {
		before := g.Snapshot()
		got := pass(g, n)
		for _, v := range before[:n/4] {
			assert.NotContains(t, got[3*n/4:], v)
		}
		for _, v := range before[3*n/4:] {
			assert.NotContains(t, got[:n/4], v)
		}
	}
}

func TestRandomBounds(t *testing.T) {
	g := NewRandom(uniform.New(3))
	require.NoError(t, g.Init(5))
	for range 1000 {
		require.Less(t, g.Next(), uint32(5))
	}
	g.Release()
	assert.Panics(t, func() { g.Next() })
}
