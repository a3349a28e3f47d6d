// Package gridgraph treats a 2D grid of cells as a searchable state space,
// the natural host for maze and terrain path-finding.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are walkable; the rest are walls.
//   - It implements core.HeuristicStateSpace[Cell], so every algorithm of
//     the search package runs on it.
//   - ParseMaze reads the classic text form where 'X' marks a wall.
//   - ConnectedComponents and SameComponent answer reachability without a search.
//   - Render draws a path and a frontier; Animator draws one frame per expansion.
//
// Cost model:
//
//   - Conn4 steps cost 1 and Conn8 diagonal steps cost √2.
//   - With GridOptions.Weighted the step length is multiplied by the value
//     of the destination cell.
//   - Heuristic is the Manhattan (Conn4) or octile (Conn8) distance, scaled
//     by the cheapest walkable value when weighted, so A* stays optimal.
//
// Complexity:
//
//   - Neighbors, Cost, Heuristic: O(1).
//   - ConnectedComponents, SameComponent: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - Render: O(W×H + |path| + |open|).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds, ErrBlocked: returned by Check for unusable endpoints.
package gridgraph
