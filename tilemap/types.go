// Package tilemap defines the Grid type, load options and sentinel errors.
package tilemap

import (
	"errors"
	"fmt"
)

// Cell characters.
const (
	Plot  byte = '.'
	Rock  byte = '#'
	Start byte = 'S'
)

// DefaultTileFactor is the replication factor used for long searches:
// the original tile surrounded by two neighbor tiles in every direction.
const DefaultTileFactor = 5

// Sentinel errors for tilemap operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilemap: all rows must have the same length")
	// ErrInvalidCell indicates a character outside the map alphabet.
	ErrInvalidCell = errors.New("tilemap: invalid cell character")
	// ErrEvenDimension indicates a width or height without an exact center.
	ErrEvenDimension = errors.New("tilemap: width and height must be odd")
	// ErrStartMissing indicates the map has no start marker.
	ErrStartMissing = errors.New("tilemap: start marker not found")
	// ErrMultipleStarts indicates more than one start marker.
	ErrMultipleStarts = errors.New("tilemap: more than one start marker")
	// ErrStartNotCentered indicates the start marker is off the grid center.
	ErrStartNotCentered = errors.New("tilemap: start marker is not at the grid center")
	// ErrBadTileFactor indicates a tile factor that is not odd and positive.
	ErrBadTileFactor = errors.New("tilemap: tile factor must be odd and positive")
	// ErrOptionViolation indicates invalid LoadOptions.
	ErrOptionViolation = errors.New("tilemap: invalid option supplied")
)

// LoadOptions controls when a map is tiled before searching.
type LoadOptions struct {
	// TileThreshold is the largest step count served by the untiled grid.
	// Zero derives it from the grid as Width/2-1.
	TileThreshold int
	// TileFactor is the odd replication factor used above the threshold.
	TileFactor int
}

// DefaultLoadOptions returns LoadOptions with a derived threshold and
// TileFactor=DefaultTileFactor.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		TileThreshold: 0,
		TileFactor:    DefaultTileFactor,
	}
}

func (o LoadOptions) validate() error {
	if o.TileThreshold < 0 {
		return fmt.Errorf("%w: TileThreshold cannot be negative (%d)", ErrOptionViolation, o.TileThreshold)
	}
	if o.TileFactor < 1 || o.TileFactor%2 == 0 {
		return fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadTileFactor, o.TileFactor)
	}
	return nil
}

// Grid is an immutable rectangular garden map.
// Rows are stored as strings; rows[y][x] is the cell at (x, y).
type Grid struct {
	width, height int
	rows          []string
}
