// Package gridmap defines core types, options, and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrDuplicateMarker indicates a marker letter appears more than once in an ASCII map.
	ErrDuplicateMarker = errors.New("gridmap: marker appears more than once")
)

// ASCII glyphs understood by Parse and produced by Render.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// WallThreshold is the minimum cell value that blocks movement.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity for Regions and Connected.
	Conn grid.Connectivity
}

// DefaultOptions returns Options with WallThreshold=1 (values ≥1 are walls)
// and Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		WallThreshold: 1,
		Conn:          grid.Conn4,
	}
}

// GridMap is a rectangular, host-side world: a fixed grid of integer cells,
// walls at or above WallThreshold, everything outside the rectangle blocked.
// It is immutable once built; Walkable is safe for concurrent use.
type GridMap struct {
	Width, Height int
	Cells         [][]int
	Conn          grid.Connectivity
	WallThreshold int
	markers       map[rune]grid.Point
}

// Overlay draws Glyph on every cell of Points when rendering.
type Overlay struct {
	Glyph  rune
	Points []grid.Point
}
