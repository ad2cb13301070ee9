package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath searches for a walkable path from start to end.
//
// Returns:
//
//   - path: start→end inclusive, or nil on failure.
//   - err:  ErrNoPath if the frontier emptied, ErrStagnated if the stagnation
//     limit tripped, ctx.Err() on cancellation, or a validation error.
//
// Preconditions and validation (in order):
//  1. walkable must be non-nil (ErrNilWalkFunc).
//  2. maxSearchDistance must be ≥ 0 (ErrBadMaxDistance).
//  3. options must be valid (ErrOptionViolation).
//
// The start cell is never checked against walkable. A neighbor without a
// g-score is enqueued only if walkable and its tentative g ≤ maxSearchDistance;
// a neighbor with a g-score is re-enqueued if walkable and strictly cheaper,
// regardless of the cap. A cell counts as closed from its first enqueue.
//
// Panics raised by walkable propagate to the caller.
func FindPath(start, end grid.Point, walkable grid.WalkFunc, maxSearchDistance int, opts ...Option) ([]grid.Point, error) {
	if walkable == nil {
		return nil, ErrNilWalkFunc
	}
	if maxSearchDistance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxDistance, maxSearchDistance)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &search{
		start:    start,
		end:      end,
		walkable: walkable,
		maxDist:  maxSearchDistance,
		options:  cfg,
		offsets:  grid.Offsets(cfg.Conn),
		cameFrom: make(map[grid.Point]grid.Point),
		gScore:   make(map[grid.Point]int),
		closed:   make(map[grid.Point]struct{}),
		pq:       make(nodePQ, 0, 64),
	}
	s.init()

	return s.process()
}

// search holds the mutable state of one FindPath call.
type search struct {
	start, end grid.Point
	walkable   grid.WalkFunc
	maxDist    int
	options    Options
	offsets    [][2]int

	cameFrom map[grid.Point]grid.Point // predecessor; the start has no entry
	gScore   map[grid.Point]int        // best known steps from start
	closed   map[grid.Point]struct{}   // cells enqueued at least once
	pq       nodePQ                    // frontier ordered by f = g + h

	bestH      int // lowest h among dequeued cells
	sinceBestH int // consecutive dequeues without improving bestH
}

// init records the start at g = 0 and pushes it onto the frontier.
func (s *search) init() {
	s.gScore[s.start] = 0
	s.bestH = grid.Manhattan(s.start, s.end)
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem{p: s.start, f: 0})
}

// process is the main loop: pop the lowest-f cell, check stagnation and the
// goal, then expand.
func (s *search) process() ([]grid.Point, error) {
	ctx := s.options.Ctx
	for s.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := heap.Pop(&s.pq).(*nodeItem).p
		h := grid.Manhattan(current, s.end)
		s.options.OnDequeue(current, s.gScore[current], h)

		if s.stagnated(h) {
			return nil, ErrStagnated
		}
		if current == s.end {
			return s.buildPath(), nil
		}
		s.expand(current)
	}

	return nil, ErrNoPath
}

// stagnated updates the stagnation counter for a dequeued cell with
// heuristic h and reports whether the limit has been exceeded.
func (s *search) stagnated(h int) bool {
	limit := s.options.StagnationLimit
	if limit <= 0 {
		return false
	}
	if h < s.bestH {
		s.bestH = h
		s.sinceBestH = 0
		return false
	}
	s.sinceBestH++
	return s.sinceBestH > limit
}

// expand relaxes every not-yet-closed neighbor of current.
func (s *search) expand(current grid.Point) {
	tentativeG := s.gScore[current] + 1

	for _, d := range s.offsets {
		nbr := grid.Point{X: current.X + d[0], Y: current.Y + d[1]}
		if _, ok := s.closed[nbr]; ok {
			continue
		}

		known, hasG := s.gScore[nbr]
		switch {
		case !hasG:
			if tentativeG > s.maxDist || !s.walkable(nbr) {
				continue
			}
		case tentativeG < known:
			// cost-improving revisit; the cap does not apply here
			if !s.walkable(nbr) {
				continue
			}
		default:
			continue
		}

		s.gScore[nbr] = tentativeG
		s.cameFrom[nbr] = current
		s.closed[nbr] = struct{}{}
		heap.Push(&s.pq, &nodeItem{p: nbr, f: tentativeG + grid.Manhattan(nbr, s.end)})
	}
}

// buildPath walks the came-from chain from the goal back to the start and
// reverses it.
func (s *search) buildPath() []grid.Point {
	path := make([]grid.Point, 0, s.gScore[s.end]+1)
	for cur := s.end; ; {
		path = append(path, cur)
		if cur == s.start {
			break
		}
		cur = s.cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry.
type nodeItem struct {
	p grid.Point
	f int
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending. Ties fall to
// heap order and are not stable.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
