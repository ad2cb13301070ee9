// Package astar finds shortest walkable paths between two grid cells.
//
// What:
//
//   - Priority-ordered expansion keyed by f = g + h, where g is the number of
//     steps taken from the start (every step costs 1) and h is the Manhattan
//     distance to the goal.
//   - maxSearchDistance caps g for newly discovered cells, bounding the search
//     to a diamond of that radius around the start.
//   - WithStagnationLimit(n) gives up once more than n consecutive dequeues
//     fail to bring the search strictly closer (in h) to the goal.
//   - The walkability predicate is evaluated per neighbor candidate; the start
//     is assumed walkable and never checked.
//
// Closed set:
//
//	A cell is marked closed the first time it is enqueued, not when it is
//	expanded, and closed cells are never examined again. On uniform Conn4
//	grids this still yields shortest paths; on other inputs the result is
//	always a valid walkable path but may be longer than optimal.
//
// Stagnation:
//
//	The counter compares each dequeued cell's h with the best h seen so far.
//	On maps with wide plateaus of equal h (long walls facing the goal) the
//	limit can trip well before the frontier is exhausted, even though a
//	path exists. Leave it disabled when a path must be found whenever one
//	exists within maxSearchDistance.
//
// Complexity (V = cells enqueued):
//
//   - Time:   O(V·log V + V·d) with d = 4 or 8 predicate calls per expansion.
//   - Memory: O(V) for g-scores, predecessors, closed set and frontier.
//   - With maxSearchDistance = R and no walls, V ≤ 2R² + 2R + 1 under Conn4.
//
// Options:
//
//   - WithStagnationLimit(n): n > 0 enables early termination; 0 disables it.
//   - WithConnectivity(c):    grid.Conn4 (default) or grid.Conn8.
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithOnDequeue(fn):      observe every dequeued cell with its g and h.
//
// Errors (sentinel):
//
//   - ErrNoPath          frontier exhausted without reaching the goal.
//   - ErrStagnated       stagnation limit exceeded (errors.Is ErrNoPath).
//   - ErrNilWalkFunc     walkable is nil.
//   - ErrBadMaxDistance  maxSearchDistance < 0.
//   - ErrOptionViolation unknown connectivity.
//
// Example usage:
//
//	path, err := astar.FindPath(from, to, world.Walkable, 200,
//	    astar.WithStagnationLimit(500),
//	)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable, or gave up
//	}
package astar
