package uniform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32N(t *testing.T) {
	t.Run("degenerate bounds", func(t *testing.T) {
		src := &Counting{Source: New(1)}
		assert.Equal(t, uint32(0), Uint32N(src, 0))
		assert.Equal(t, uint32(0), Uint32N(src, 1))
		assert.Zero(t, src.Draws, "degenerate bounds must not touch the source")
	})
	t.Run("within bound", func(t *testing.T) {
		src := New(2)
		seen := make([]int, 7)
		for range 7000 {
			v := Uint32N(src, 7)
			require.Less(t, v, uint32(7))
			seen[v]++
		}
		for v, c := range seen {
			assert.InDelta(t, 1000, c, 200, "value %d", v)
		}
	})
}

func TestRange(t *testing.T) {
	src := New(3)
	test := []struct {
		name   string
		lo, hi uint32
	}{
		{"single", 5, 5},
		{"quarter", 25, 75},
		{"from zero", 0, 3},
		{"empty", 4, 1},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			for range 200 {
				v := Range(src, tt.lo, tt.hi)
				if tt.hi < tt.lo {
					require.Equal(t, tt.lo, v)
					continue
				}
				require.GreaterOrEqual(t, v, tt.lo)
				require.LessOrEqual(t, v, tt.hi)
			}
		})
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 100 {
		require.Equal(t, a.Uint32N(1000), b.Uint32N(1000))
	}
	assert.NotNil(t, NewRandom())
}
