// Package scenario loads pathfinding scenarios from HCL files and solves
// them with astar and smooth.
//
// A scenario file holds exactly one map block, one search block and any
// number of route blocks:
//
//	map {
//	  rows = [
//	    "S....#....",
//	    ".###.#.##.",
//	    "....#...E.",
//	  ]
//	  connectivity = 4          # optional, 4 or 8
//	}
//
//	search {
//	  max_distance     = 200    # required, >= 0
//	  stagnation_limit = 0      # optional, 0 = none
//	  smooth           = true   # optional
//	}
//
//	route "corner" {
//	  from = start
//	  to   = [width - 1, height - 1]
//	}
//
// Map rows use gridmap.Parse glyphs: '#' is a wall, anything else is open,
// letters are markers. Route endpoints are HCL expressions evaluated with
// these variables:
//
//   - width, height: map dimensions
//   - start, end:    the S and E markers as [x, y], when present
//   - marker:        an object of every marker, e.g. marker.A
//
// A file without route blocks gets one implicit route named "default" from
// S to E; ErrNoRoutes is returned if either marker is missing.
package scenario
