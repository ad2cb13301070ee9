package gridmap

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/line"
)

// Render draws the map as ASCII rows joined by '\n' (no trailing newline).
// Walls are '#', open cells '.', markers keep their letter. Overlays are
// applied in order, so later overlays win; markers are drawn last.
// Points outside the grid are ignored.
func (gm *GridMap) Render(overlays ...Overlay) string {
	canvas := make([][]rune, gm.Height)
	for y := range canvas {
		canvas[y] = make([]rune, gm.Width)
		for x := range canvas[y] {
			if gm.Cells[y][x] >= gm.WallThreshold {
				canvas[y][x] = GlyphWall
			} else {
				canvas[y][x] = GlyphOpen
			}
		}
	}
	for _, ov := range overlays {
		for _, p := range ov.Points {
			if gm.InBounds(p) {
				canvas[p.Y][p.X] = ov.Glyph
			}
		}
	}
	for r, p := range gm.markers {
		canvas[p.Y][p.X] = r
	}

	var sb strings.Builder
	sb.Grow(gm.Height * (gm.Width + 1))
	for y, row := range canvas {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Trace expands a waypoint list into every cell its straight segments
// cover, rasterized with line.Points. Use it to draw smoothed paths.
func Trace(waypoints []grid.Point) []grid.Point {
	if len(waypoints) == 0 {
		return nil
	}
	out := []grid.Point{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		out = append(out, line.Points(waypoints[i-1], waypoints[i])[1:]...)
	}
	return out
}
