// Package smooth reduces grid paths to the waypoints where they turn.
//
// Path walks a start→end path and greedily replaces runs of cells with a
// single straight segment whenever every cell on the Bresenham line between
// the two waypoints is walkable. The result is a list of waypoints, not a
// cell-by-cell path: consecutive waypoints may be many cells apart. Use
// gridmap.Trace or line.Points to expand a segment back into cells.
//
// Complexity: O(n·L) predicate calls for n input points and segments of at
// most L cells. Memory: O(n) for the output.
package smooth

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/line"
)

// Path returns a smoothed copy of path.
//
// Paths of three or fewer points are returned as is (the same slice).
// Longer paths yield a new slice that starts and ends with the input's
// endpoints and is never longer than the input; path itself is not modified.
// Every segment between consecutive output waypoints has line of sight under
// walkable, except where the input itself had none between neighbors.
//
// walkable must be non-nil when len(path) > 3. Its panics propagate.
func Path(path []grid.Point, walkable grid.WalkFunc) []grid.Point {
	if len(path) <= 3 {
		return path
	}

	last := len(path) - 1
	out := []grid.Point{path[0]}
	for cur := 0; cur < last; {
		farthest := cur + 1
		for i := cur + 2; i <= last; i++ {
			if !LineOfSight(out[len(out)-1], path[i], walkable) {
				break
			}
			farthest = i
		}
		out = append(out, path[farthest])
		cur = farthest
	}
	if out[len(out)-1] != path[last] {
		out = append(out, path[last])
	}

	return out
}

// LineOfSight reports whether every cell of the Bresenham segment from a to
// b, both endpoints included, is walkable. It stops at the first blocked cell.
func LineOfSight(a, b grid.Point, walkable grid.WalkFunc) bool {
	for seg := line.New(a, b); seg.HasNext(); {
		if !walkable(seg.Next()) {
			return false
		}
	}
	return true
}
