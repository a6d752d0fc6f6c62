// Package grid3d is the root of a small library for addressing flat arrays
// with 3D grid coordinates.
//
// Subpackages:
//
//	types3d/ — IJK coordinate value type
//	grid3d/  — Extents, LightGrid (formula), CachedGrid (offset tables),
//	           the Indexer contract, New with strategy options, Walk/All
//	volume/  — Volume[T], a flat backing array addressed through an Indexer
//
// Quick example:
//
//	ix := grid3d.New(3, 5, 7)                      // cached strategy
//	idx, ok := ix.IndexFrom(types3d.IJK{I: 1, J: 2}) // 7, true
//
//	go get github.com/katalvlaran/grid3d
package grid3d
