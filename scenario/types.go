package scenario

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for scenario loading. HCL syntax and decoding problems
// are returned as wrapped hcl.Diagnostics instead.
var (
	// ErrConnectivity indicates map.connectivity is neither 4 nor 8.
	ErrConnectivity = errors.New("scenario: connectivity must be 4 or 8")
	// ErrSearch indicates a negative max_distance or stagnation_limit.
	ErrSearch = errors.New("scenario: search limits must be non-negative")
	// ErrPoint indicates a route endpoint that is not a pair [x, y].
	ErrPoint = errors.New("scenario: point must be a pair [x, y]")
	// ErrOutOfBounds indicates a route endpoint outside the map.
	ErrOutOfBounds = errors.New("scenario: point outside the map")
	// ErrDuplicateRoute indicates two route blocks share a name.
	ErrDuplicateRoute = errors.New("scenario: route name used more than once")
	// ErrNoRoutes indicates a file with no route blocks and no S/E markers.
	ErrNoRoutes = errors.New("scenario: no routes defined and no S/E markers on the map")
)

// DefaultRoute names the implicit S→E route.
const DefaultRoute = "default"

// Scenario is a decoded scenario file: one map, search limits and the
// routes to solve on it.
type Scenario struct {
	// Source is the file name the scenario was read from.
	Source string
	Map    *gridmap.GridMap

	MaxDistance     int
	StagnationLimit int
	Smooth          bool

	Routes []Route
}

// Route is a named start/end pair.
type Route struct {
	Name     string
	From, To grid.Point
}

// Result is the outcome of solving one route. Err is astar's error and is
// nil when a path was found; Smoothed is nil unless smoothing is on.
type Result struct {
	Route    Route
	Raw      []grid.Point
	Smoothed []grid.Point
	Err      error
}

// Path returns Smoothed when present and Raw otherwise.
func (r Result) Path() []grid.Point {
	if r.Smoothed != nil {
		return r.Smoothed
	}
	return r.Raw
}

// hclFile mirrors the top-level structure of a scenario file for gohcl.
type hclFile struct {
	Map    hclMap      `hcl:"map,block"`
	Search hclSearch   `hcl:"search,block"`
	Routes []*hclRoute `hcl:"route,block"`
}

type hclMap struct {
	Rows         []string `hcl:"rows"`
	Connectivity *int     `hcl:"connectivity,optional"`
}

type hclSearch struct {
	MaxDistance     int  `hcl:"max_distance"`
	StagnationLimit int  `hcl:"stagnation_limit,optional"`
	Smooth          bool `hcl:"smooth,optional"`
}

// hclRoute keeps its endpoints as raw expressions; they are evaluated
// once the map is known and its variables can be bound.
type hclRoute struct {
	Name string         `hcl:"name,label"`
	From hcl.Expression `hcl:"from"`
	To   hcl.Expression `hcl:"to"`
}

// Overlay glyphs used by Result.Overlays.
const (
	GlyphRaw      = '*'
	GlyphSegment  = '+'
	GlyphWaypoint = 'o'
)

// Overlays returns the gridmap overlays that draw the result: every raw
// cell as GlyphRaw, or, when smoothed waypoints exist and showRaw is false,
// the traced segments as GlyphSegment with waypoints as GlyphWaypoint.
// A failed result has no overlays.
func (r Result) Overlays(showRaw bool) []gridmap.Overlay {
	if r.Err != nil {
		return nil
	}
	if showRaw || r.Smoothed == nil {
		return []gridmap.Overlay{{Glyph: GlyphRaw, Points: r.Raw}}
	}
	return []gridmap.Overlay{
		{Glyph: GlyphSegment, Points: gridmap.Trace(r.Smoothed)},
		{Glyph: GlyphWaypoint, Points: r.Smoothed},
	}
}
