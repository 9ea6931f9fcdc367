package bfs

import (
	"github.com/katalvlaran/mazepath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state. visited and parent are dense tables
// indexed by grid.Index; parent is filled when a cell is enqueued, so it does
// not depend on queue entries staying alive.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   []queueItem
	visited []bool
	parent  []int
	count   int
}

// Solve finds the shortest entrance→exit path in a validated grid and marks
// it with grid.Path, entrance and exit included.
//
// The entrance is marked before the search starts. Cells are expanded in
// Options.Order; a cell is passable when g.Within accepts it and it is not a
// wall. Returns ErrUnreachable when the frontier runs dry, leaving only the
// entrance marked.
//
// Complexity: O(W×H) time and memory.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Width * g.Height
	w := &walker{
		g:       g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}

	if err := g.Set(g.Entrance, grid.Path); err != nil {
		return nil, err
	}
	w.enqueue(g.Entrance, 0, -1)

	return w.loop()
}

// enqueue marks p visited, records its parent and appends it to the queue.
func (w *walker) enqueue(p grid.Position, depth, parent int) {
	i := w.g.Index(p)
	w.visited[i] = true
	w.parent[i] = parent
	w.count++
	w.opts.OnEnqueue(p, depth)
	w.queue = append(w.queue, queueItem{pos: p, depth: depth})
}

// loop drains the queue front to back until the exit is dequeued.
func (w *walker) loop() (*Result, error) {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.opts.OnDequeue(item.pos, item.depth)
		if item.pos == w.g.Exit {
			return w.backtrack(item)
		}
		w.expand(item)
	}
	return nil, ErrUnreachable
}

// expand enqueues every unseen passable neighbour of item in Options.Order.
func (w *walker) expand(item queueItem) {
	from := w.g.Index(item.pos)
	for _, d := range w.opts.Order {
		next := item.pos.Step(d)
		if !w.g.Within(next) || w.g.Cell(next) == grid.Wall {
			continue
		}
		if !w.visited[w.g.Index(next)] {
			w.enqueue(next, item.depth+1, from)
		}
	}
}

// backtrack follows parents from the exit to the entrance, marking each cell,
// and returns the path in entrance→exit order.
func (w *walker) backtrack(exit queueItem) (*Result, error) {
	path := make([]grid.Position, 0, exit.depth+1)
	for i := w.g.Index(exit.pos); i != -1; i = w.parent[i] {
		p := w.g.Coordinate(i)
		if err := w.g.Set(p, grid.Path); err != nil {
			return nil, err
		}
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Distance: exit.depth, Visited: w.count}, nil
}
