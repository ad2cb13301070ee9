// Package line rasterizes straight segments between grid cells.
//
// Bresenham yields every cell on the discrete line from start to end,
// both endpoints included, using integer arithmetic only. It performs no
// walkability filtering; callers that need a visibility test combine it with
// a grid.WalkFunc (see smooth.LineOfSight).
//
// Complexity: O(max(|dx|, |dy|)) time, O(1) memory per iterator.
package line

import "github.com/katalvlaran/gridpath/grid"

// Bresenham is a lazy, finite, non-restartable grid.Iterator over the cells
// of one segment. The zero value is not usable; construct with New.
type Bresenham struct {
	x, y       int
	endX, endY int
	dx, dy     int
	sx, sy     int
	err        int
	finished   bool
}

// compile-time check
var _ grid.Iterator = (*Bresenham)(nil)

// New returns an iterator from start to end. start == end yields exactly one cell.
func New(start, end grid.Point) *Bresenham {
	b := &Bresenham{
		x:    start.X,
		y:    start.Y,
		endX: end.X,
		endY: end.Y,
		dx:   abs(end.X - start.X),
		dy:   abs(end.Y - start.Y),
		sx:   -1,
		sy:   -1,
	}
	if start.X < end.X {
		b.sx = 1
	}
	if start.Y < end.Y {
		b.sy = 1
	}
	b.err = b.dx - b.dy
	return b
}

// HasNext reports whether the end cell has not been yielded yet.
func (b *Bresenham) HasNext() bool {
	return !b.finished
}

// Next returns the current cell and advances one step toward the end.
// It panics with grid.ErrExhausted once the end cell has been returned.
func (b *Bresenham) Next() grid.Point {
	if b.finished {
		panic(grid.ErrExhausted)
	}
	current := grid.Point{X: b.x, Y: b.y}

	if b.x == b.endX && b.y == b.endY {
		b.finished = true
		return current
	}

	e2 := 2 * b.err
	if e2 > -b.dy {
		b.err -= b.dy
		b.x += b.sx
	}
	if e2 < b.dx {
		b.err += b.dx
		b.y += b.sy
	}

	return current
}

// Points collects the full segment from start to end.
func Points(start, end grid.Point) []grid.Point {
	out := make([]grid.Point, 0, max(abs(end.X-start.X), abs(end.Y-start.Y))+1)
	b := New(start, end)
	for b.HasNext() {
		out = append(out, b.Next())
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
