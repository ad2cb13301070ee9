package scenario_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/scenario"
)

func parse(t *testing.T, src string) (*scenario.Scenario, error) {
	t.Helper()
	return scenario.Parse(context.Background(), []byte(src), "test.hcl")
}

//----------------------------------------------------------------------------//
// Decoding
//----------------------------------------------------------------------------//

func TestLoad_Maze(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "maze.hcl"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "maze.hcl"), sc.Source)
	assert.Equal(t, 8, sc.Map.Width)
	assert.Equal(t, 4, sc.Map.Height)
	assert.Equal(t, grid.Conn4, sc.Map.Conn)
	assert.Equal(t, 100, sc.MaxDistance)
	assert.Zero(t, sc.StagnationLimit)
	assert.True(t, sc.Smooth)
	assert.Equal(t, []scenario.Route{
		{Name: "main", From: grid.Pt(0, 0), To: grid.Pt(7, 3)},
		{Name: "corner", From: grid.Pt(0, 0), To: grid.Pt(7, 0)},
	}, sc.Routes)

	r, ok := sc.Route("corner")
	assert.True(t, ok)
	assert.Equal(t, grid.Pt(7, 0), r.To)
	_, ok = sc.Route("missing")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	var diags hcl.Diagnostics
	assert.ErrorAs(t, err, &diags)
}

func TestLoad_TempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
map {
  rows = ["S..E"]
}
search {
  max_distance = 3
}
`), 0o600))

	sc, err := scenario.Load(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, sc.Smooth)
	assert.Equal(t, []scenario.Route{{Name: scenario.DefaultRoute, From: grid.Pt(0, 0), To: grid.Pt(3, 0)}}, sc.Routes)
}

func TestParse_Connectivity(t *testing.T) {
	sc, err := parse(t, `
map {
  rows         = ["S.", ".E"]
  connectivity = 8
}
search { max_distance = 10 }
`)
	require.NoError(t, err)
	assert.Equal(t, grid.Conn8, sc.Map.Conn)

	_, err = parse(t, `
map {
  rows         = ["S.", ".E"]
  connectivity = 6
}
search { max_distance = 10 }
`)
	assert.ErrorIs(t, err, scenario.ErrConnectivity)
}

func TestParse_Expressions(t *testing.T) {
	sc, err := parse(t, `
map {
  rows = [
    "A....",
    ".....",
    "....B",
  ]
}
search { max_distance = 50 }

route "diagonal" {
  from = marker.A
  to   = marker.B
}
route "edge" {
  from = [width - 2, height - 3]
  to   = [0, height - 1]
}
`)
	require.NoError(t, err)
	assert.Equal(t, []scenario.Route{
		{Name: "diagonal", From: grid.Pt(0, 0), To: grid.Pt(4, 2)},
		{Name: "edge", From: grid.Pt(3, 0), To: grid.Pt(0, 2)},
	}, sc.Routes)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		err   error
		diags bool
	}{
		{
			name:  "Syntax",
			src:   `map { rows = [ }`,
			diags: true,
		},
		{
			name:  "MissingSearch",
			src:   `map { rows = ["S.E"] }`,
			diags: true,
		},
		{
			name: "MissingMaxDistance",
			src: `
map { rows = ["S.E"] }
search { smooth = true }`,
			diags: true,
		},
		{
			name: "NegativeMaxDistance",
			src: `
map { rows = ["S.E"] }
search { max_distance = -1 }`,
			err: scenario.ErrSearch,
		},
		{
			name: "NegativeStagnation",
			src: `
map { rows = ["S.E"] }
search {
  max_distance     = 5
  stagnation_limit = -2
}`,
			err: scenario.ErrSearch,
		},
		{
			name: "EmptyMap",
			src: `
map { rows = [] }
search { max_distance = 5 }`,
			err: gridmap.ErrEmptyGrid,
		},
		{
			name: "RaggedMap",
			src: `
map { rows = ["S..", "E."] }
search { max_distance = 5 }`,
			err: gridmap.ErrNonRectangular,
		},
		{
			name: "NoRoutesNoMarkers",
			src: `
map { rows = ["S.."] }
search { max_distance = 5 }`,
			err: scenario.ErrNoRoutes,
		},
		{
			name: "DuplicateRoute",
			src: `
map { rows = ["S.E"] }
search { max_distance = 5 }
route "a" {
  from = start
  to   = end
}
route "a" {
  from = end
  to   = start
}`,
			err: scenario.ErrDuplicateRoute,
		},
		{
			name: "PointArity",
			src: `
map { rows = ["S.E"] }
search { max_distance = 5 }
route "a" {
  from = [0, 0, 0]
  to   = end
}`,
			err: scenario.ErrPoint,
		},
		{
			name: "OutOfBounds",
			src: `
map { rows = ["S.E"] }
search { max_distance = 5 }
route "a" {
  from = start
  to   = [width, 0]
}`,
			err: scenario.ErrOutOfBounds,
		},
		{
			name: "UnknownVariable",
			src: `
map { rows = ["..."] }
search { max_distance = 5 }
route "a" {
  from = start
  to   = [2, 0]
}`,
			diags: true,
		},
		{
			name: "NotAPoint",
			src: `
map { rows = ["S.E"] }
search { max_distance = 5 }
route "a" {
  from = "somewhere"
  to   = end
}`,
			diags: true,
		},
		{
			name: "FractionalCoordinate",
			src: `
map { rows = ["S.E"] }
search { max_distance = 5 }
route "a" {
  from = [width / 2, 0]
  to   = end
}`,
			diags: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := parse(t, tc.src)
			require.Error(t, err)
			assert.Nil(t, sc)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
			if tc.diags {
				var diags hcl.Diagnostics
				assert.ErrorAs(t, err, &diags)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Solving
//----------------------------------------------------------------------------//

func TestSolveAll_Maze(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "maze.hcl"))
	require.NoError(t, err)

	results := sc.SolveAll(context.Background())
	require.Len(t, results, 2)

	main := results[0]
	require.NoError(t, main.Err)
	assert.Equal(t, "main", main.Route.Name)
	assert.Len(t, main.Raw, 15)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 0}, {X: 7, Y: 0}, {X: 7, Y: 3}}, main.Smoothed)
	assert.Equal(t, main.Smoothed, main.Path())

	corner := results[1]
	require.NoError(t, corner.Err)
	assert.Len(t, corner.Raw, 12)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 0}, {X: 7, Y: 0}}, corner.Smoothed)
}

func TestSolve_NoPathAndRawOnly(t *testing.T) {
	sc, err := parse(t, `
map {
  rows = [
    "S.#..",
    "..#.E",
  ]
}
search { max_distance = 100 }
route "blocked" {
  from = start
  to   = end
}
route "local" {
  from = start
  to   = [1, 1]
}
`)
	require.NoError(t, err)

	blocked := sc.Solve(context.Background(), sc.Routes[0])
	assert.ErrorIs(t, blocked.Err, astar.ErrNoPath)
	assert.Nil(t, blocked.Path())

	local := sc.Solve(context.Background(), sc.Routes[1])
	require.NoError(t, local.Err)
	assert.Nil(t, local.Smoothed, "smoothing is off")
	assert.Len(t, local.Path(), 3)
}

func TestSolve_Stagnation(t *testing.T) {
	sc, err := parse(t, `
map {
  rows = [
    ".....#.....",
    ".....#.....",
    ".....#.....",
    ".....#.....",
    ".....#.....",
    ".S...#...E.",
    ".....#.....",
    ".....#.....",
    ".....#.....",
    ".....#.....",
    "...........",
  ]
}
search {
  max_distance     = 100
  stagnation_limit = 3
}
`)
	require.NoError(t, err)
	res := sc.Solve(context.Background(), sc.Routes[0])
	assert.ErrorIs(t, res.Err, astar.ErrStagnated)
}

func TestSolve_Canceled(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "maze.hcl"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := sc.Solve(ctx, sc.Routes[0])
	assert.True(t, errors.Is(res.Err, context.Canceled))
}

func TestResult_Overlays(t *testing.T) {
	res := scenario.Result{
		Raw:      []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
		Smoothed: []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	}

	raw := res.Overlays(true)
	require.Len(t, raw, 1)
	assert.Equal(t, rune(scenario.GlyphRaw), raw[0].Glyph)
	assert.Equal(t, res.Raw, raw[0].Points)

	smoothed := res.Overlays(false)
	require.Len(t, smoothed, 2)
	assert.Equal(t, rune(scenario.GlyphSegment), smoothed[0].Glyph)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, smoothed[0].Points)
	assert.Equal(t, rune(scenario.GlyphWaypoint), smoothed[1].Glyph)

	rawOnly := scenario.Result{Raw: res.Raw}
	assert.Equal(t, rune(scenario.GlyphRaw), rawOnly.Overlays(false)[0].Glyph)

	failed := scenario.Result{Err: astar.ErrNoPath}
	assert.Nil(t, failed.Overlays(false))
}
