package gridmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestRegions_Simple4 tests Regions on a 4×3 map with Conn4.
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple4(t *testing.T) {
	gm, err := Parse([]string{
		"#..#",
		"..##",
		"##..",
	}, DefaultOptions())
	require.NoError(t, err)

	regions := gm.Regions()
	require.Len(t, regions, 2)

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.Equal(t, grid.Pt(1, 0), regions[0][0], "regions start at their first row-major cell")
}

// TestRegions_Diagonal8 checks that Conn8 joins cells touching at corners.
//
//	. # # # .
//	# . # . #
//	# # . # #
//	# . # . #
//	. # # # .
//
// With Conn8 all 9 open cells form one region; with Conn4 there are 9.
func TestRegions_Diagonal8(t *testing.T) {
	rows := []string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}
	opts := DefaultOptions()
	opts.Conn = grid.Conn8
	gm, err := Parse(rows, opts)
	require.NoError(t, err)

	regions := gm.Regions()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 9)

	gm4, err := Parse(rows, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, gm4.Regions(), 9)
}

// TestRegions_EdgeCases covers the all-wall map and a single open cell.
func TestRegions_EdgeCases(t *testing.T) {
	walls, err := Parse([]string{"##", "##"}, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, walls.Regions())

	single, err := Parse([]string{"#."}, DefaultOptions())
	require.NoError(t, err)
	regions := single.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}}, regions[0])
}

// TestRegions_InvalidConnFallsBack ensures an out-of-range Conn behaves as Conn4.
func TestRegions_InvalidConnFallsBack(t *testing.T) {
	gm, err := Parse([]string{".#", "#."}, DefaultOptions())
	require.NoError(t, err)
	gm.Conn = grid.Connectivity(99)
	assert.Len(t, gm.Regions(), 2)
}

func TestConnected(t *testing.T) {
	gm, err := Parse([]string{
		"S.#..",
		"..#.E",
		"..#..",
	}, DefaultOptions())
	require.NoError(t, err)
	s, _ := gm.Marker('S')
	e, _ := gm.Marker('E')

	assert.False(t, gm.Connected(s, e), "wall splits the map")
	assert.True(t, gm.Connected(s, grid.Pt(1, 2)))
	assert.True(t, gm.Connected(e, e))
	assert.False(t, gm.Connected(s, grid.Pt(2, 0)), "walls are never connected")
	assert.False(t, gm.Connected(grid.Pt(-1, 0), s))
}
