// Package gridmap provides a ready-made host world for the gridpath
// algorithms: a rectangular grid of integer cells that can be built from a
// 2D slice or parsed from ASCII art. It supports:
//
//   - A walkability predicate (Walkable) usable as a grid.WalkFunc
//   - Named marker cells (S, E, ...) taken from ASCII maps
//   - Connected walkable regions and reachability checks (via bfs)
//   - ASCII rendering with path overlays
//
// Cells with value < WallThreshold are open; value ≥ WallThreshold are walls.
package gridmap

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/gridpath/grid"
)

// New constructs a GridMap from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*GridMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridMap{
		Width:         w,
		Height:        h,
		Cells:         cells,
		Conn:          opts.Conn,
		WallThreshold: opts.WallThreshold,
		markers:       make(map[rune]grid.Point),
	}, nil
}

// Parse builds a GridMap from ASCII rows. '#' is a wall (value
// WallThreshold), every other rune is open (value 0). Letters are also
// recorded as markers, so "S" and "E" can be looked up with Marker.
// Rows are measured in runes. Returns ErrEmptyGrid, ErrNonRectangular or
// ErrDuplicateMarker.
func Parse(rows []string, opts Options) (*GridMap, error) {
	values := make([][]int, len(rows))
	markers := make(map[rune]grid.Point)
	wall := max(opts.WallThreshold, 1)

	for y, row := range rows {
		runes := []rune(row)
		values[y] = make([]int, len(runes))
		for x, r := range runes {
			if r == GlyphWall {
				values[y][x] = wall
				continue
			}
			if unicode.IsLetter(r) {
				if prev, dup := markers[r]; dup {
					return nil, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateMarker, r, prev, grid.Pt(x, y))
				}
				markers[r] = grid.Pt(x, y)
			}
		}
	}

	gm, err := New(values, opts)
	if err != nil {
		return nil, err
	}
	gm.WallThreshold = wall
	gm.markers = markers

	return gm, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gm *GridMap) InBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < gm.Width && p.Y >= 0 && p.Y < gm.Height
}

// Walkable reports whether p is inside the grid and not a wall.
// The method value gm.Walkable satisfies grid.WalkFunc.
func (gm *GridMap) Walkable(p grid.Point) bool {
	return gm.InBounds(p) && gm.Cells[p.Y][p.X] < gm.WallThreshold
}

// Value returns the stored cell value and whether p is in bounds.
func (gm *GridMap) Value(p grid.Point) (int, bool) {
	if !gm.InBounds(p) {
		return 0, false
	}
	return gm.Cells[p.Y][p.X], true
}

// Marker returns the cell tagged with letter r in the ASCII source.
func (gm *GridMap) Marker(r rune) (grid.Point, bool) {
	p, ok := gm.markers[r]
	return p, ok
}

// Markers returns a copy of all marker cells.
func (gm *GridMap) Markers() map[rune]grid.Point {
	out := make(map[rune]grid.Point, len(gm.markers))
	for r, p := range gm.markers {
		out[r] = p
	}
	return out
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gm *GridMap) index(p grid.Point) int {
	return p.Y*gm.Width + p.X
}

// Coordinate converts a row-major index back to a point.
// Complexity: O(1).
func (gm *GridMap) Coordinate(idx int) grid.Point {
	return grid.Pt(idx%gm.Width, idx/gm.Width)
}
