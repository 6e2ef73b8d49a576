// Package grid models the static search space: a rectangular field of
// passable and blocked cells plus the start and goal endpoints.
//
// What:
//
//   - Grid stores Rows×Cols wall flags row-major and the two endpoints.
//   - Neighbors returns 4-connected passable cells in the fixed order
//     down, up, right, left.
//   - Regions / Connected identify contiguous passable areas.
//   - Parse / String read and write a plain-text map format.
//
// Why:
//
//   - Search runs keep their own per-cell state, so one Grid can be reused
//     across many runs; walls persist until edited.
//   - The neighbor order is part of the observable behavior of every search
//     strategy (tie-breaks, backtracking), so it is fixed here once.
//
// Complexity:
//
//   - Neighbors, CellAt, SetWall: O(1).
//   - Regions, Connected:         O(Rows×Cols), Memory: O(Rows×Cols).
//   - Parse, String:              O(Rows×Cols).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: coordinates outside [0,Rows)×[0,Cols).
//   - ErrBadRune, ErrDuplicateEndpoint: malformed text input.
package grid
