// Package bfs finds the shortest path between the two openings of a
// validated maze and marks it on the grid.
//
// What
//
//   - Breadth-first search from grid.Grid.Entrance over 4-connected,
//     non-wall cells that lie within each row's trimmed length.
//   - Every cell is enqueued at most once; its predecessor is recorded in a
//     dense position-indexed table at enqueue time.
//   - The first time the exit is dequeued its path is shortest by step count;
//     backtracking over predecessors marks it with grid.Path.
//   - Hooks run at two stages:
//   - OnEnqueue (when a cell joins the frontier)
//   - OnDequeue (immediately before expansion)
//
// Determinism
//
//	Neighbours are expanded in a fixed order (up, right, down, left by
//	default). When several shortest paths exist, the order decides which one
//	is marked; the distance never depends on it.
//
// Unreachable exits
//
//	Structural validation guarantees a connected wall skeleton, not a
//	connected interior. A maze can be well-formed yet unsolvable; Solve then
//	returns ErrUnreachable and only the entrance stays marked.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue, visited flags and predecessor table
//
// Usage
//
//	if err := validate.Validate(g); err != nil {
//		// handle
//	}
//	res, err := bfs.Solve(g)
//	if errors.Is(err, bfs.ErrUnreachable) {
//		// no solution
//	}
//
//	// With functional options:
//	res, err = bfs.Solve(g,
//		bfs.WithNeighborOrder([4]grid.Direction{grid.Left, grid.Down, grid.Right, grid.Up}),
//		bfs.WithOnDequeue(func(p grid.Position, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrUnreachable      if the exit cannot be reached.
//   - ErrOptionViolation  if WithNeighborOrder is not a permutation.
package bfs
