// Package bfs implements a pull-based breadth-first expansion over an
// implicit, possibly unbounded grid.
package bfs

import (
	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// Iterator yields cells in non-decreasing depth from the start.
// It implements grid.Iterator and holds all of its working state;
// two iterators never share anything.
type Iterator struct {
	opts    Options
	offsets [][2]int
	queue   []queueItem
	head    int
	visited map[grid.Point]struct{}
	depth   int
}

// compile-time check
var _ grid.Iterator = (*Iterator)(nil)

// New seeds an iterator at start, applying any number of functional Options.
// The start cell is always yielded first; Valid is only consulted for
// discovered neighbors. Returns ErrOptionViolation for bad options.
func New(start grid.Point, opts ...Option) (*Iterator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	it := &Iterator{
		opts:    o,
		offsets: grid.Offsets(o.Conn),
		queue:   make([]queueItem, 0, 16),
		visited: make(map[grid.Point]struct{}, 16),
	}
	it.enqueue(start, 0)

	return it, nil
}

// HasNext reports whether a discovered cell is still waiting to be yielded.
func (it *Iterator) HasNext() bool {
	return it.head < len(it.queue)
}

// Next dequeues the oldest discovered cell, discovers its unvisited valid
// neighbors and returns the dequeued cell.
// It panics with grid.ErrExhausted when HasNext is false.
func (it *Iterator) Next() grid.Point {
	if !it.HasNext() {
		panic(grid.ErrExhausted)
	}
	item := it.dequeue()
	it.depth = item.depth

	nextDepth := item.depth + 1
	if it.opts.MaxDepth > 0 && nextDepth > it.opts.MaxDepth {
		return item.p
	}
	for _, d := range it.offsets {
		nbr := grid.Point{X: item.p.X + d[0], Y: item.p.Y + d[1]}
		if _, seen := it.visited[nbr]; seen {
			continue
		}
		if !it.opts.Valid(nbr) {
			continue
		}
		it.enqueue(nbr, nextDepth)
	}

	return item.p
}

// Depth returns the depth of the cell returned by the most recent Next.
// Before the first Next it returns 0.
func (it *Iterator) Depth() int {
	return it.depth
}

// Pending returns the number of discovered cells not yet yielded.
func (it *Iterator) Pending() int {
	return len(it.queue) - it.head
}

// enqueue marks p visited at depth d, calls OnEnqueue and adds it to the queue.
func (it *Iterator) enqueue(p grid.Point, d int) {
	it.visited[p] = struct{}{}
	it.opts.OnEnqueue(p, d)
	it.queue = append(it.queue, queueItem{p: p, depth: d})
}

// dequeue pops the first item. The consumed prefix is compacted away once it
// dominates the backing array.
func (it *Iterator) dequeue() queueItem {
	item := it.queue[it.head]
	it.head++
	if it.head > 1024 && it.head*2 > len(it.queue) {
		n := copy(it.queue, it.queue[it.head:])
		it.queue = it.queue[:n]
		it.head = 0
	}
	return item
}
