// Package grid3d maps 3D grid coordinates (i, j, k) to offsets in a flat
// backing array and back, for rectangular grids with fixed extents.
//
// What:
//
//   - Extents describes a grid: IMax×JMax×KMax, with Size cached once.
//   - LightGrid computes offsets with the row-major formula
//     i + (j + k·JMax)·IMax and provides the inverse IndexToCoord.
//   - CachedGrid precomputes one offset table per outer axis so the hot
//     path is i + jTable[j] + kTable[k], without multiplications.
//   - Indexer is the contract both strategies satisfy; write callers
//     against it and pick the strategy at construction time (see New).
//
// Layout:
//
//	i varies fastest, then j, then k. Enumerating k outer, j middle,
//	i inner yields offsets 0, 1, …, Size()-1 in order.
//
// Bounds:
//
//   - Extents are exclusive upper bounds; zero is legal and yields an
//     empty grid.
//   - Out-of-range coordinates or offsets are reported as (zero, false),
//     never as an error or a panic.
//   - Extents are not validated: a product that overflows int is the
//     caller's problem.
//
// Complexity:
//
//   - LightGrid: O(1) construction and memory.
//   - CachedGrid: O(JMax + KMax) construction and memory.
//   - IndexFrom, IndexToCoord: O(1).
//
// Concurrency:
//
//	Every type is immutable after construction. A constructed grid may be
//	shared by any number of goroutines for reading without locks.
package grid3d
