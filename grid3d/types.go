package grid3d

import (
	"fmt"

	"github.com/katalvlaran/grid3d/types3d"
)

// Shape reports the extents of a 3D grid.
type Shape interface {
	// Size returns IMax·JMax·KMax, the length of a matching backing array.
	Size() int
	// IMax returns the exclusive upper bound of the i axis.
	IMax() int
	// JMax returns the exclusive upper bound of the j axis.
	JMax() int
	// KMax returns the exclusive upper bound of the k axis.
	KMax() int
}

// Indexer maps coordinates to offsets in a flat backing array of length Size().
// LightGrid and CachedGrid implement it and agree on every valid coordinate.
type Indexer interface {
	Shape
	// IndexFrom returns the offset of c, or ok=false when any axis of c is
	// negative or at/beyond its extent.
	IndexFrom(c types3d.IJK) (index int, ok bool)
}

// Strategy selects the Indexer implementation built by New.
type Strategy int

const (
	// Formula builds a LightGrid: no precomputation, two multiplications per lookup.
	Formula Strategy = iota
	// Cached builds a CachedGrid: O(JMax+KMax) tables, additions only per lookup.
	Cached
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Formula:
		return "formula"
	case Cached:
		return "cached"
	default:
		return "unknown"
	}
}

var (
	_ Shape        = Extents{}
	_ Indexer      = (*LightGrid)(nil)
	_ Indexer      = (*CachedGrid)(nil)
	_ fmt.Stringer = (*CachedGrid)(nil)
	_ fmt.Stringer = Strategy(0)
)
