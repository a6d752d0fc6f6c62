// Package volume owns flat backing arrays addressed by 3D coordinates.
//
// A Volume[T] allocates exactly Size() elements and routes every access
// through a grid3d.Indexer, so the indexing strategy (formula or cached)
// is chosen once by whoever builds the indexer.
//
// Errors:
//
//   - ErrNilIndexer: New was given a nil indexer.
//   - ErrOutOfRange: At/Set coordinate lies outside the grid.
//
// Concurrency:
//
//	Reads may run concurrently. Set and Fill mutate the backing array and
//	need external synchronization against any other access.
package volume
