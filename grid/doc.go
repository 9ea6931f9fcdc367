// Package grid holds the in-memory model of a text-drawn maze: a row-major
// grid of tiles plus the metadata derived while reading it.
//
// What:
//
//   - Tile is one cell: Wall ('#'), Opening ('X') or Blank (' '). Path ('o')
//     is an overlay written by the pathfinder, never accepted on input.
//   - Build turns raw lines into a *Grid, rejecting foreign characters and any
//     opening count other than two.
//   - Width is the horizontal span of wall characters, not the longest row.
//     Rows are never shifted, so the span starts at column 0 and
//     Width = rightmost wall column + 1 (0 for a maze without walls).
//   - Entrance and Exit are the first and second openings in row-major order.
//   - Line lengths go through two explicit stages: StageRaw holds each row's
//     original length, StageTrimmed (after Trim) holds one past the last
//     non-blank tile.
//
// Lifecycle:
//
//	Build → Pad → Trim (done by package validate) → Set(Path) (package bfs)
//
// The grid is owned by one caller at a time and is not safe for concurrent
// mutation.
//
// Complexity:
//
//   - Build:  O(W×H) time and memory.
//   - Pad:    O(W×H) time, once.
//   - Trim:   O(W×H) time.
//   - TileAt, Cell, Within, Set: O(1).
//
// Errors:
//
//   - ErrIllegalChar:   a character outside the maze alphabet (as *ParseError).
//   - ErrOpeningCount:  not exactly two openings (as *ParseError).
//   - ErrOutOfRange:    a position outside the grid or the stored row.
package grid
