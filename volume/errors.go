package volume

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grid3d/types3d"
)

var (
	// ErrNilIndexer indicates New was called without an indexer.
	ErrNilIndexer = errors.New("volume: nil indexer")

	// ErrOutOfRange indicates a coordinate outside the grid extents.
	// At and Set return it wrapped; match with errors.Is.
	ErrOutOfRange = errors.New("volume: coordinate out of range")
)

// volumeErrorf wraps err with Volume method context.
func volumeErrorf(method string, c types3d.IJK, err error) error {
	return fmt.Errorf("Volume.%s%s: %w", method, c, err)
}
