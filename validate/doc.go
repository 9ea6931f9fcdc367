// Package validate decides whether a grid.Grid is a well-formed maze.
//
// What:
//
//	Validate runs seven checks in a fixed order and stops at the first failure:
//
//	  1. Row scan: every wall touches another wall (4-neighbourhood), and no row
//	     holds exactly one wall unless it also holds exactly one opening.
//	  2. Pad rows to the grid width.
//	  3. Trim line lengths to the last non-blank tile.
//	  4. Entrance sits in a corridor: walls left+right XOR walls up+down.
//	  5. Exit, same rule.
//	  6. The wall skeleton (walls and openings) is one 4-connected component.
//	  7. Column scan: no column holds exactly one wall unless it also holds
//	     exactly one opening.
//
//	Steps 2 and 3 mutate the grid; a grid that passed is padded and trimmed and
//	ready for package bfs. Re-validating an accepted grid succeeds again.
//
// Complexity:
//
//   - Validate:   O(W×H) time, O(W×H) memory for the connectivity BFS.
//   - Components: O(W×H) time and memory.
//
// Errors:
//
//	Every failure is a *ValidationError whose Kind is one of ErrIsolatedWall,
//	ErrRowLoneWall, ErrBadEntrance, ErrBadExit, ErrDisconnected or
//	ErrColumnLoneWall, so callers can use errors.Is.
package validate
