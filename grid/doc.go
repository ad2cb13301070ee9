// Package grid holds the shared vocabulary of gridpath: integer cell
// coordinates, neighbor connectivity, the walkability predicate and the
// pull-based Iterator protocol implemented by every traversal.
//
// What:
//
//   - Point is an immutable (X, Y) pair with value semantics, usable as a map key.
//   - WalkFunc is the caller's opaque "can this cell be traversed" predicate.
//   - Connectivity selects 4-neighbors (Conn4) or 8-neighbors (Conn8).
//   - Iterator is the HasNext/Next contract shared by line.Bresenham and
//     bfs.Iterator; Collect, Take and All drain it uniformly.
//
// Why:
//
//   - The algorithms never see world or tile data; every notion of bounds,
//     obstacles and terrain lives behind a WalkFunc, which keeps them trivially
//     testable with synthetic grids.
//   - Traversals are independent implementations of one interface, composed
//     wherever generic draining is needed.
//
// Preconditions:
//
//   - Calling Next when HasNext reports false is a programmer error.
//     Implementations panic with ErrExhausted instead of returning a sentinel.
//
// Complexity:
//
//   - Neighbors:           O(d), d = 4 or 8.
//   - Manhattan/Chebyshev: O(1).
//   - Collect:             O(n) for an n-element sequence.
package grid
