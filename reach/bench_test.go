package reach_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/stepgarden/reach"
	"github.com/katalvlaran/stepgarden/tilemap"
)

// openMap builds an n×n rock-free map with the start at the center.
func openMap(b *testing.B, n int) *tilemap.Grid {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	mid := []byte(rows[n/2])
	mid[n/2] = tilemap.Start
	rows[n/2] = string(mid)
	return mustParse(b, strings.Join(rows, "\n"))
}

// BenchmarkSearch_Open131 measures a 64-step search on an open 131×131 map.
func BenchmarkSearch_Open131(b *testing.B) {
	g := openMap(b, 131)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.Search(g, reach.DebugSteps)
	}
}

// BenchmarkSearch_Tiled runs the third extrapolation sample on the tiled
// 11×11 sample map (55×55 cells, 27 steps).
func BenchmarkSearch_Tiled(b *testing.B) {
	g := mustParse(b, sampleMap)
	tg, err := g.Tile(tilemap.DefaultTileFactor)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.Search(tg, 27)
	}
}

// BenchmarkSearch_Wrap measures the sparse visited layer on the infinite plane.
func BenchmarkSearch_Wrap(b *testing.B) {
	g := mustParse(b, sampleMap)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.Search(g, 100, reach.WithWrap())
	}
}
