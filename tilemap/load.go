package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a map, one row per line. Trailing whitespace on each line and
// trailing blank lines are ignored. On top of New's checks the map must hold
// exactly one start marker, placed at the grid center.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	g, err := New(rows)
	if err != nil {
		return nil, err
	}
	sx, sy, err := g.findStart()
	if err != nil {
		return nil, err
	}
	if cx, cy := g.Center(); sx != cx || sy != cy {
		return nil, fmt.Errorf("%w: start (%d,%d), center (%d,%d)", ErrStartNotCentered, sx, sy, cx, cy)
	}

	return g, nil
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Threshold returns the largest step count the untiled grid serves under opts.
func (g *Grid) Threshold(opts LoadOptions) int {
	if opts.TileThreshold > 0 {
		return opts.TileThreshold
	}
	// every expansion below this depth stays strictly inside one tile
	t := g.width/2 - 1
	if h := g.height/2 - 1; h < t {
		t = h
	}
	if t < 0 {
		t = 0
	}
	return t
}

// ForSteps returns the grid to search for the given step count: g itself
// when steps is within the threshold, otherwise g tiled by opts.TileFactor.
func (g *Grid) ForSteps(steps int, opts LoadOptions) (*Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if steps <= g.Threshold(opts) {
		return g, nil
	}
	return g.Tile(opts.TileFactor)
}

// Load reads the map at path and returns the grid to search for steps.
func Load(path string, steps int, opts LoadOptions) (*Grid, error) {
	g, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return g.ForSteps(steps, opts)
}
