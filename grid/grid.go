package grid

import "iter"

// Neighbor offsets. The first four are the cardinal directions; Conn8 appends
// the diagonals. Order is fixed so traversals are reproducible.
var (
	offsets4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	offsets8 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
)

// Offsets returns the (dx, dy) neighbor offsets for c. The returned slice is
// shared and must not be modified. Unknown values fall back to Conn4.
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors returns the cells adjacent to p under c.
// Complexity: O(d).
func Neighbors(p Point, c Connectivity) []Point {
	offs := Offsets(c)
	out := make([]Point, len(offs))
	for i, d := range offs {
		out[i] = Point{X: p.X + d[0], Y: p.Y + d[1]}
	}
	return out
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|a.X-b.X|, |a.Y-b.Y|).
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Collect drains it into a slice. It never returns on an infinite iterator;
// use Take for those.
func Collect(it Iterator) []Point {
	var out []Point
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Take drains at most n points from it.
func Take(it Iterator, n int) []Point {
	out := make([]Point, 0, max(n, 0))
	for len(out) < n && it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// All adapts it into a range-over-func sequence. Breaking out of the loop
// stops consumption; the iterator is left positioned after the last yielded point.
func All(it Iterator) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
