package grid3d

import (
	"iter"

	"github.com/katalvlaran/grid3d/types3d"
)

// Walk calls fn for every coordinate of s with k outermost and i innermost,
// i.e. in increasing offset order. It stops early when fn returns false.
// Complexity: O(Size()) calls.
func Walk(s Shape, fn func(c types3d.IJK) bool) {
	iMax, jMax, kMax := s.IMax(), s.JMax(), s.KMax()
	var c types3d.IJK
	for c.K = 0; c.K < kMax; c.K++ {
		for c.J = 0; c.J < jMax; c.J++ {
			for c.I = 0; c.I < iMax; c.I++ {
				if !fn(c) {
					return
				}
			}
		}
	}
}

// All yields every (coordinate, offset) pair of ix in Walk order. With either
// strategy the offsets come out as 0, 1, …, Size()-1.
//
//	for c, idx := range grid3d.All(ix) {
//		data[idx] = f(c)
//	}
func All(ix Indexer) iter.Seq2[types3d.IJK, int] {
	return func(yield func(types3d.IJK, int) bool) {
		Walk(ix, func(c types3d.IJK) bool {
			idx, _ := ix.IndexFrom(c)
			return yield(c, idx)
		})
	}
}
