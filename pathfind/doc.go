// Package pathfind finds paths between two cells of one floor.
//
// Overview:
//
//   - AStar is a best-first search over the 8-connected grid, expanding the
//     frontier cell with minimal f = g + h. Orthogonal steps cost 10, diagonal
//     steps cost 14. h defaults to 10 × Manhattan distance to the destination,
//     which favours straight runs but can overestimate; WithHeuristic(Octile)
//     makes h exact on open floors and A* paths minimum-cost.
//   - ThetaStar shares the A* loop but relaxes a neighbour straight from the
//     current cell's parent whenever LineOfSight holds between the two. Such a
//     segment costs ⌊10 × sqrt(|Δx| + |Δy|)⌋. Paths come out with fewer turns;
//     they are not guaranteed to be the shortest Euclidean paths.
//   - LineOfSight is a Bresenham-style walk between two cells of a floor and
//     is symmetric in its arguments. Visibility maps it over a whole floor.
//
// Scratch state:
//
//   - g, h and parent live in an arena allocated per call and indexed by the
//     row-major cell index. Floors are never written, so any number of searches
//     may run concurrently on the same floor.
//
// Results:
//
//   - A non-nil *Result carries the path from start to dest inclusive, its
//     cost in search units and the number of expanded cells.
//   - A nil *Result with a nil error means dest is unreachable (this includes
//     a blocked dest). No-path is never an error.
//   - Errors report invalid input (ErrNilFloor, ErrWrongFloor, ErrOutOfBounds)
//     or context cancellation.
//
// Ordering:
//
//   - Frontier ties on f are broken by insertion order, so a given floor and
//     query always produce the same path.
//
// Complexity:
//
//   - Time:   O(N log N) for N = W×H cells; Theta* adds an O(W+H) sight test per relaxation.
//   - Memory: O(N) for the arena and frontier.
package pathfind
