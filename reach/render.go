package reach

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/stepgarden/tilemap"
)

// Render writes g row by row with every position of res replaced by Mark.
// Positions outside the grid (wrapping searches) are not drawn.
func Render(w io.Writer, g *tilemap.Grid, res *Result) error {
	if g == nil {
		return ErrGridNil
	}
	bw := bufio.NewWriter(w)
	next := 0 // res.Positions is row-major
	for y := 0; y < g.Height(); y++ {
		line := []byte(g.Row(y))
		for ; next < len(res.Positions) && res.Positions[next].Y <= y; next++ {
			p := res.Positions[next]
			if p.Y == y && g.InBounds(p.X, p.Y) {
				line[p.X] = Mark
			}
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("reach: render: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("reach: render: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("reach: render: %w", err)
	}
	return nil
}
