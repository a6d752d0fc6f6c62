package grid3d

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/grid3d/types3d"
)

// CachedGrid is the table-based Indexer. Construction precomputes the
// contribution of every j and every k to the offset, so IndexFrom is three
// bounds checks and two additions.
//
// jTable[x] = x·IMax and kTable[x] = x·IMax·JMax; len(jTable)==JMax and
// len(kTable)==KMax. Both are built once and never written again.
type CachedGrid struct {
	Extents
	jTable []int
	kTable []int
}

// NewCachedGrid builds a cached indexer for an iMax×jMax×kMax grid.
// Complexity: O(jMax + kMax) time and memory.
func NewCachedGrid(iMax, jMax, kMax int) *CachedGrid {
	return CachedGridFrom(NewExtents(iMax, jMax, kMax))
}

// CachedGridFrom builds a cached indexer over existing extents. The result
// reports the same extents and Size as e.
// Complexity: O(JMax + KMax) time and memory.
func CachedGridFrom(e Extents) *CachedGrid {
	return &CachedGrid{
		Extents: e,
		jTable:  buildJTable(e),
		kTable:  buildKTable(e),
	}
}

// IndexFrom returns i + jTable[j] + kTable[k], or ok=false when c lies
// outside the grid. The result equals LightGrid.IndexFrom for every c.
// Complexity: O(1).
func (g *CachedGrid) IndexFrom(c types3d.IJK) (int, bool) {
	if uint(c.I) >= uint(g.iMax) {
		return 0, false
	}
	if uint(c.J) >= uint(g.jMax) {
		return 0, false
	}
	if uint(c.K) >= uint(g.kMax) {
		return 0, false
	}

	return c.I + g.jTable[c.J] + g.kTable[c.K], true
}

// OffsetTables returns copies of the j and k offset tables.
// Complexity: O(JMax + KMax).
func (g *CachedGrid) OffsetTables() (j, k []int) {
	j = make([]int, len(g.jTable))
	copy(j, g.jTable)
	k = make([]int, len(g.kTable))
	copy(k, g.kTable)

	return j, k
}

// TableBytes reports the memory held by the offset tables.
func (g *CachedGrid) TableBytes() uint64 {
	return uint64(len(g.jTable)+len(g.kTable)) * strconv.IntSize / 8
}

// String implements fmt.Stringer, e.g. "CachedGrid(3×5×7, tables 96 B)".
func (g *CachedGrid) String() string {
	return fmt.Sprintf("CachedGrid(%s, tables %s)", g.Extents, humanize.Bytes(g.TableBytes()))
}

func buildJTable(e Extents) []int {
	t := make([]int, e.jMax)
	for j := range t {
		t[j] = j * e.iMax
	}

	return t
}

func buildKTable(e Extents) []int {
	t := make([]int, e.kMax)
	stride := e.iMax * e.jMax
	for k := range t {
		t[k] = k * stride
	}

	return t
}
