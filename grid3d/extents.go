package grid3d

import "fmt"

// Extents describes a rectangular 3D grid. It is a comparable value type;
// size is derived once in NewExtents and never recomputed.
type Extents struct {
	iMax, jMax, kMax int
	size             int // iMax*jMax*kMax
}

// NewExtents returns the descriptor of an iMax×jMax×kMax grid.
// Zero extents are accepted and give Size()==0. Inputs are not validated.
// Complexity: O(1).
func NewExtents(iMax, jMax, kMax int) Extents {
	return Extents{
		iMax: iMax,
		jMax: jMax,
		kMax: kMax,
		size: iMax * jMax * kMax,
	}
}

// Size returns IMax·JMax·KMax.
func (e Extents) Size() int { return e.size }

// IMax returns the i extent.
func (e Extents) IMax() int { return e.iMax }

// JMax returns the j extent.
func (e Extents) JMax() int { return e.jMax }

// KMax returns the k extent.
func (e Extents) KMax() int { return e.kMax }

// String implements fmt.Stringer, e.g. "3×5×7".
func (e Extents) String() string {
	return fmt.Sprintf("%d×%d×%d", e.iMax, e.jMax, e.kMax)
}

