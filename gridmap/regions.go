package gridmap

import (
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// Regions finds all contiguous areas of walkable cells according to gm.Conn.
// Regions are ordered by their first cell in row-major order; cells within a
// region are in BFS order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gm *GridMap) Regions() [][]grid.Point {
	seen := make([]bool, gm.Width*gm.Height)
	var regions [][]grid.Point

	for y := 0; y < gm.Height; y++ {
		for x := 0; x < gm.Width; x++ {
			p := grid.Pt(x, y)
			if !gm.Walkable(p) || seen[gm.index(p)] {
				continue
			}
			it, err := bfs.New(p, bfs.WithValid(gm.Walkable), bfs.WithConnectivity(gm.conn()))
			if err != nil {
				// conn() only returns valid connectivity values
				panic(err)
			}
			var region []grid.Point
			for it.HasNext() {
				c := it.Next()
				seen[gm.index(c)] = true
				region = append(region, c)
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// Connected reports whether b can be reached from a through walkable cells
// under gm.Conn. Both endpoints must be walkable.
func (gm *GridMap) Connected(a, b grid.Point) bool {
	if !gm.Walkable(a) || !gm.Walkable(b) {
		return false
	}
	it, err := bfs.New(a, bfs.WithValid(gm.Walkable), bfs.WithConnectivity(gm.conn()))
	if err != nil {
		panic(err)
	}
	for it.HasNext() {
		if it.Next() == b {
			return true
		}
	}
	return false
}

// conn sanitizes gm.Conn, which is exported and may hold any value.
func (gm *GridMap) conn() grid.Connectivity {
	if gm.Conn.Valid() {
		return gm.Conn
	}
	return grid.Conn4
}
