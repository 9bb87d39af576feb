// Package tilemap loads and validates garden maps: rectangular grids of
// plots ('.'), rocks ('#') and a single start marker ('S').
//
// What:
//
//   - Grid wraps an immutable set of equal-length rows.
//   - Parse/ReadFile read one row per line and enforce a centered start.
//   - Tile replicates a grid into an odd factor×factor block so a bounded
//     search can look past the edges of a single tile.
//   - ForSteps/Load pick the untiled or tiled grid for a given step count.
//
// Why:
//
//   - A step-bounded search from the center of a tiled grid behaves exactly
//     like a search on the infinite plane as long as it never reaches the
//     outer border, which is what the quadratic extrapolation relies on.
//
// Complexity:
//
//   - New, Parse:  O(W×H) time and memory.
//   - Tile:        O(f²×W×H) time and memory.
//   - At, Blocked: O(1).
//
// Options:
//
//   - LoadOptions.TileThreshold: largest step count served by the untiled grid
//     (0 derives Width/2-1, which is 64 for a 131-wide map).
//   - LoadOptions.TileFactor: odd replication factor (default 5).
//
// Errors:
//
//   - ErrEmptyGrid:        no rows or no columns.
//   - ErrNonRectangular:   rows of differing lengths.
//   - ErrInvalidCell:      a character outside {'.', '#', 'S'}.
//   - ErrEvenDimension:    width or height is even, so no exact center exists.
//   - ErrStartMissing, ErrMultipleStarts, ErrStartNotCentered: start marker checks.
//   - ErrBadTileFactor:    factor < 1 or even.
//   - ErrOptionViolation:  invalid LoadOptions.
package tilemap
