package grid3d_test

import (
	"testing"

	"github.com/katalvlaran/grid3d/grid3d"
	"github.com/katalvlaran/grid3d/types3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Extents
//----------------------------------------------------------------------------//

func TestNewExtents(t *testing.T) {
	e := grid3d.NewExtents(3, 5, 7)
	assert.Equal(t, 3, e.IMax())
	assert.Equal(t, 5, e.JMax())
	assert.Equal(t, 7, e.KMax())
	assert.Equal(t, 105, e.Size())
	assert.Equal(t, "3×5×7", e.String())
	assert.Equal(t, e, grid3d.NewExtents(3, 5, 7))
}

func TestNewExtents_ZeroAxis(t *testing.T) {
	for _, e := range []grid3d.Extents{
		grid3d.NewExtents(0, 5, 7),
		grid3d.NewExtents(3, 0, 7),
		grid3d.NewExtents(3, 5, 0),
		grid3d.NewExtents(0, 0, 0),
	} {
		assert.Equal(t, 0, e.Size(), "extents %s", e)
	}
}

//----------------------------------------------------------------------------//
// LightGrid forward and inverse lookup
//----------------------------------------------------------------------------//

// TestLightGrid_SimpleCube walks a 3×5×7 grid in k/j/i order and expects
// consecutive offsets that map back to the same coordinate.
func TestLightGrid_SimpleCube(t *testing.T) {
	const iMax, jMax, kMax = 3, 5, 7
	g := grid3d.NewLightGrid(iMax, jMax, kMax)

	index := 0
	for k := 0; k < kMax; k++ {
		for j := 0; j < jMax; j++ {
			for i := 0; i < iMax; i++ {
				c := types3d.IJK{I: i, J: j, K: k}
				got, ok := g.IndexFrom(c)
				require.True(t, ok, "no index for %s", c)
				require.Equal(t, index, got, "index of %s", c)

				restored, ok := g.IndexToCoord(index)
				require.True(t, ok, "no coordinate for %d", index)
				require.Equal(t, c, restored, "coordinate of %d", index)

				index++
			}
		}
	}
	require.Equal(t, g.Size(), index)
}

func TestLightGrid_Example(t *testing.T) {
	g := grid3d.NewLightGrid(3, 5, 7)
	require.Equal(t, 105, g.Size())

	idx, ok := g.IndexFrom(types3d.IJK{I: 1, J: 2, K: 0})
	require.True(t, ok)
	require.Equal(t, 7, idx)

	c, ok := g.IndexToCoord(7)
	require.True(t, ok)
	require.Equal(t, types3d.IJK{I: 1, J: 2, K: 0}, c)
}

// TestLightGrid_SingleAxis checks that a grid with two unit extents behaves
// as a 1D index along the remaining axis.
func TestLightGrid_SingleAxis(t *testing.T) {
	cases := []struct {
		name  string
		grid  func(n int) *grid3d.LightGrid
		coord func(v int) types3d.IJK
	}{
		{"IOnly", func(n int) *grid3d.LightGrid { return grid3d.NewLightGrid(n, 1, 1) },
			func(v int) types3d.IJK { return types3d.IJK{I: v} }},
		{"JOnly", func(n int) *grid3d.LightGrid { return grid3d.NewLightGrid(1, n, 1) },
			func(v int) types3d.IJK { return types3d.IJK{J: v} }},
		{"KOnly", func(n int) *grid3d.LightGrid { return grid3d.NewLightGrid(1, 1, n) },
			func(v int) types3d.IJK { return types3d.IJK{K: v} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for n := 0; n < 5; n++ {
				g := tc.grid(n)
				require.Equal(t, n, g.Size())
				for v := 0; v < n; v++ {
					c := tc.coord(v)
					idx, ok := g.IndexFrom(c)
					require.True(t, ok, "n=%d v=%d", n, v)
					require.Equal(t, v, idx, "n=%d v=%d", n, v)

					restored, ok := g.IndexToCoord(idx)
					require.True(t, ok, "n=%d v=%d", n, v)
					require.Equal(t, c, restored, "n=%d v=%d", n, v)
				}
			}
		})
	}
}

func TestLightGrid_OutOfRange(t *testing.T) {
	g := grid3d.NewLightGrid(1, 1, 1)
	for _, c := range []types3d.IJK{
		{I: 1, J: 0, K: 0},
		{I: 0, J: 1, K: 0},
		{I: 0, J: 0, K: 1},
		{I: -1, J: 0, K: 0},
		{I: 0, J: -1, K: 0},
		{I: 0, J: 0, K: -1},
	} {
		_, ok := g.IndexFrom(c)
		assert.False(t, ok, "IndexFrom(%s)", c)
	}

	for _, idx := range []int{1, 2, -1} {
		_, ok := g.IndexToCoord(idx)
		assert.False(t, ok, "IndexToCoord(%d)", idx)
	}
}

func TestLightGrid_EmptyGrid(t *testing.T) {
	for _, g := range []*grid3d.LightGrid{
		grid3d.NewLightGrid(0, 4, 4),
		grid3d.NewLightGrid(4, 0, 4),
		grid3d.NewLightGrid(4, 4, 0),
	} {
		require.Equal(t, 0, g.Size())
		for _, c := range []types3d.IJK{{}, {I: 1, J: 1, K: 1}, {I: 3, J: 3, K: 3}} {
			_, ok := g.IndexFrom(c)
			assert.False(t, ok, "%s IndexFrom(%s)", g, c)
		}
		_, ok := g.IndexToCoord(0)
		assert.False(t, ok, "%s IndexToCoord(0)", g)
	}
}

// TestLightGrid_RoundTrip checks both inverse laws on a non-cubic grid.
func TestLightGrid_RoundTrip(t *testing.T) {
	g := grid3d.NewLightGrid(13, 57, 29)
	for idx := 0; idx < g.Size(); idx++ {
		c, ok := g.IndexToCoord(idx)
		require.True(t, ok, "IndexToCoord(%d)", idx)
		back, ok := g.IndexFrom(c)
		require.True(t, ok, "IndexFrom(%s)", c)
		require.Equal(t, idx, back)
	}
	grid3d.Walk(g, func(c types3d.IJK) bool {
		idx, ok := g.IndexFrom(c)
		require.True(t, ok)
		back, ok := g.IndexToCoord(idx)
		require.True(t, ok)
		require.Equal(t, c, back)
		return true
	})
}

func TestLightGridFrom(t *testing.T) {
	e := grid3d.NewExtents(3, 5, 7)
	g := grid3d.LightGridFrom(e)
	assert.Equal(t, e, g.Extents)
	assert.Equal(t, "LightGrid(3×5×7)", g.String())
}
