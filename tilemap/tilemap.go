package tilemap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from non-empty, rectangular rows over {'.', '#', 'S'}
// with odd width and height. The rows are copied so later changes to the
// caller's slice do not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell or ErrEvenDimension.
// Complexity: O(W×H).
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case Plot, Rock, Start:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, row[x], x, y)
			}
		}
	}
	if w%2 == 0 || h%2 == 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEvenDimension, w, h)
	}

	cp := make([]string, h)
	copy(cp, rows)

	return &Grid{width: w, height: h, rows: cp}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Row returns row y.
func (g *Grid) Row(y int) string { return g.rows[y] }

// Rows returns a copy of all rows.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	copy(out, g.rows)
	return out
}

// At returns the cell character at (x,y). The caller must check InBounds.
func (g *Grid) At(x, y int) byte { return g.rows[y][x] }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked reports whether (x,y) holds a rock.
func (g *Grid) Blocked(x, y int) bool { return g.rows[y][x] == Rock }

// Center returns the geometric center (Width/2, Height/2).
func (g *Grid) Center() (x, y int) { return g.width / 2, g.height / 2 }

// Square reports whether the grid has as many rows as columns.
func (g *Grid) Square() bool { return g.width == g.height }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) { return idx % g.width, idx / g.width }

// Size returns Width*Height.
func (g *Grid) Size() int { return g.width * g.height }

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string { return strings.Join(g.rows, "\n") }

// findStart locates the single start marker.
func (g *Grid) findStart() (x, y int, err error) {
	x, y = -1, -1
	for ry, row := range g.rows {
		for rx := 0; rx < len(row); rx++ {
			if row[rx] != Start {
				continue
			}
			if x >= 0 {
				return 0, 0, fmt.Errorf("%w: at (%d,%d) and (%d,%d)", ErrMultipleStarts, x, y, rx, ry)
			}
			x, y = rx, ry
		}
	}
	if x < 0 {
		return 0, 0, ErrStartMissing
	}
	return x, y, nil
}

// Tile replicates the grid into factor×factor copies glued edge to edge.
// Every start marker becomes a plot; the center of the result is the center
// of the middle copy, so the original start position is preserved.
// Returns ErrBadTileFactor unless factor is odd and ≥ 1.
// Complexity: O(factor²×W×H).
func (g *Grid) Tile(factor int) (*Grid, error) {
	if factor < 1 || factor%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadTileFactor, factor)
	}
	rows := make([]string, 0, g.height*factor)
	for i := 0; i < factor; i++ {
		for _, line := range g.rows {
			line = strings.ReplaceAll(line, string(Start), string(Plot))
			rows = append(rows, strings.Repeat(line, factor))
		}
	}

	return &Grid{width: g.width * factor, height: g.height * factor, rows: rows}, nil
}
