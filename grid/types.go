package grid

import (
	"errors"
	"fmt"
)

// ErrExhausted is the panic value used when Next is called on an iterator
// whose HasNext reports false.
var ErrExhausted = errors.New("grid: Next called on exhausted iterator")

// Point identifies a single grid cell. The zero value is the origin.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// WalkFunc reports whether the cell at p can be traversed.
// It is supplied per call and must be side-effect free; the algorithms
// call it once per candidate cell and never cache results across calls.
type WalkFunc func(p Point) bool

// Everywhere is a WalkFunc that accepts every cell.
func Everywhere(Point) bool { return true }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, S, N.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: SE, NW, NE, SW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared connectivity values.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Iterator is a pull-based, finite or infinite sequence of grid cells.
//
// HasNext peeks without consuming. Next consumes and advances; calling it
// when HasNext is false panics with ErrExhausted.
type Iterator interface {
	HasNext() bool
	Next() Point
}
