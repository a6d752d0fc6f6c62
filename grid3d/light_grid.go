package grid3d

import "github.com/katalvlaran/grid3d/types3d"

// LightGrid is the formula-based Indexer. It stores only the extents and
// the product IMax·JMax, and supports the inverse mapping IndexToCoord.
type LightGrid struct {
	Extents
	ijMax int // iMax*jMax, the stride of k
}

// NewLightGrid builds a formula indexer for an iMax×jMax×kMax grid.
// Complexity: O(1).
func NewLightGrid(iMax, jMax, kMax int) *LightGrid {
	return LightGridFrom(NewExtents(iMax, jMax, kMax))
}

// LightGridFrom builds a formula indexer over existing extents.
// Complexity: O(1).
func LightGridFrom(e Extents) *LightGrid {
	return &LightGrid{
		Extents: e,
		ijMax:   e.iMax * e.jMax,
	}
}

// IndexFrom returns i + (j + k·JMax)·IMax, or ok=false when c lies outside
// the grid.
// Complexity: O(1).
func (g *LightGrid) IndexFrom(c types3d.IJK) (int, bool) {
	// uint conversion folds the negative check into the upper-bound one
	if uint(c.I) >= uint(g.iMax) {
		return 0, false
	}
	if uint(c.J) >= uint(g.jMax) {
		return 0, false
	}
	if uint(c.K) >= uint(g.kMax) {
		return 0, false
	}

	return c.I + (c.J+c.K*g.jMax)*g.iMax, true
}

// IndexToCoord inverts IndexFrom. It returns ok=false when index is negative
// or not below Size().
//
//	wo_k = index mod IMax·JMax
//	i    = wo_k mod IMax
//	j    = (wo_k − i) / IMax
//	k    = (index − i − j·IMax) / IMax·JMax
//
// Complexity: O(1).
func (g *LightGrid) IndexToCoord(index int) (types3d.IJK, bool) {
	if uint(index) >= uint(g.size) {
		return types3d.IJK{}, false
	}
	woK := index % g.ijMax
	i := woK % g.iMax
	j := (woK - i) / g.iMax
	k := (index - (i + j*g.iMax)) / g.ijMax

	return types3d.IJK{I: i, J: j, K: k}, true
}

// String implements fmt.Stringer, e.g. "LightGrid(3×5×7)".
func (g *LightGrid) String() string {
	return "LightGrid(" + g.Extents.String() + ")"
}
