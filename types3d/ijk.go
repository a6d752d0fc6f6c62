package types3d

import "fmt"

// IJK is a coordinate inside a 3D grid. I varies fastest, K slowest.
// Valid coordinates are non-negative; negative values are simply out of range
// for every grid.
type IJK struct {
	I, J, K int
}

// String implements fmt.Stringer.
func (c IJK) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.I, c.J, c.K)
}
