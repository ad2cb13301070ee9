// Package bfs provides a breadth-first expansion over an implicit grid,
// yielding cells one at a time through the grid.Iterator protocol.
//
// What
//
//   - Expand outward from a start cell, level by level, under 4- or 8-connectivity.
//   - Yield each cell exactly once, in non-decreasing depth (step count) from the start.
//   - A validity predicate (WithValid) decides which discovered cells are enqueued;
//     it is evaluated once per cell, at discovery time.
//   - Optional depth limit (WithMaxDepth) and discovery hook (WithOnEnqueue).
//
// Why
//
//   - Flood fills, reachability checks, "nearest cell that satisfies X" searches.
//   - The caller decides bounds and obstacles, and when to stop pulling.
//
// Unbounded grids
//
//	The iterator performs no bounds checking. With the default always-true
//	predicate it never runs dry; bound it with a predicate, WithMaxDepth,
//	or by simply ceasing to call Next (grid.Take helps).
//
// Determinism
//
//	Neighbors are discovered in grid.Offsets order, so the sequence for a
//	given start, predicate and connectivity is fully reproducible.
//	A predicate that is not referentially stable yields implementation-defined order.
//
// Complexity (V = cells yielded)
//
//   - Time:   O(V·d)  d = 4 or 8 predicate calls per yielded cell at most
//   - Memory: O(V)    visited set and queue
//
// Usage
//
//	it, err := bfs.New(start,
//	    bfs.WithValid(isFloor),
//	    bfs.WithConnectivity(grid.Conn8),
//	    bfs.WithMaxDepth(10),
//	)
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	for it.HasNext() {
//	    p := it.Next()
//	    if isTarget(p) {
//	        break
//	    }
//	}
//
// Errors
//
//   - ErrOptionViolation  unknown connectivity or negative MaxDepth.
//   - Next on an exhausted iterator panics with grid.ErrExhausted.
package bfs
