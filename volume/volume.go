package volume

import (
	"fmt"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/grid3d/grid3d"
	"github.com/katalvlaran/grid3d/types3d"
)

// Volume is a flat array of ix.Size() values addressed by coordinate.
type Volume[T any] struct {
	ix   grid3d.Indexer
	data []T // len == ix.Size()
}

// New allocates a zeroed Volume over ix.
// Returns ErrNilIndexer when ix is nil.
// Complexity: O(Size()) time and memory.
func New[T any](ix grid3d.Indexer) (*Volume[T], error) {
	if ix == nil {
		return nil, ErrNilIndexer
	}

	return &Volume[T]{ix: ix, data: make([]T, ix.Size())}, nil
}

// Indexer returns the indexer the volume was built with.
func (v *Volume[T]) Indexer() grid3d.Indexer { return v.ix }

// Len returns the number of stored elements, equal to Indexer().Size().
func (v *Volume[T]) Len() int { return len(v.data) }

// At returns the value stored at c, or ErrOutOfRange.
// Complexity: O(1).
func (v *Volume[T]) At(c types3d.IJK) (T, error) {
	idx, ok := v.ix.IndexFrom(c)
	if !ok {
		var zero T
		return zero, volumeErrorf("At", c, ErrOutOfRange)
	}

	return v.data[idx], nil
}

// Set stores x at c, or returns ErrOutOfRange and leaves the volume untouched.
// Complexity: O(1).
func (v *Volume[T]) Set(c types3d.IJK, x T) error {
	idx, ok := v.ix.IndexFrom(c)
	if !ok {
		return volumeErrorf("Set", c, ErrOutOfRange)
	}
	v.data[idx] = x

	return nil
}

// Fill assigns fn(c) to every coordinate, k outermost and i innermost.
// Complexity: O(Size()) calls of fn.
func (v *Volume[T]) Fill(fn func(c types3d.IJK) T) {
	for c, idx := range grid3d.All(v.ix) {
		v.data[idx] = fn(c)
	}
}

// Data returns a copy of the backing array in offset order.
// Complexity: O(Size()).
func (v *Volume[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String implements fmt.Stringer, e.g. "Volume[float64](3×5×7, 840 B)".
func (v *Volume[T]) String() string {
	var zero T
	elem := reflect.TypeOf(&zero).Elem()
	bytes := uint64(len(v.data)) * uint64(elem.Size())

	return fmt.Sprintf("Volume[%s](%d×%d×%d, %s)",
		elem, v.ix.IMax(), v.ix.JMax(), v.ix.KMax(), humanize.Bytes(bytes))
}
