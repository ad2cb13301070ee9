// Package gridpath is a toolkit for pathfinding on 2D grids whose shape the
// caller describes with nothing more than a walkability predicate.
//
// What is in the box?
//
//	grid/      Point, WalkFunc, connectivity, neighbor offsets, the Iterator protocol
//	line/      Bresenham rasterizer as an Iterator
//	bfs/       breadth-first flood Iterator with depth tracking
//	astar/     A* with a step cap and a stagnation limit
//	smooth/    greedy line-of-sight waypoint reduction
//	gridmap/   a ready-made host world: ASCII maps, regions, rendering
//	scenario/  HCL scenario files and route solving
//
// The algorithms keep no state between calls and never look at a map
// directly: every query goes through the caller's predicate, so the same
// code runs on bounded boards, infinite planes and live game worlds.
//
// Quick ASCII example:
//
//	S . # . .
//	. . # . E
//	. . . . .
//
//	path, err := astar.FindPath(s, e, gm.Walkable, 100)
//	waypoints := smooth.Path(path, gm.Walkable)
//
// The gridpath command (cmd/gridpath) loads a scenario file, solves its
// routes and prints or displays them.
package gridpath
