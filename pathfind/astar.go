package pathfind

import (
	"context"

	"github.com/katalvlaran/floorpath/layout"
)

// AStar is the grid A* Finder. It is stateless between calls and safe for
// concurrent use.
type AStar struct {
	e engine
}

// NewAStar returns an A* Finder.
func NewAStar(opts ...Option) *AStar {
	return &AStar{e: newEngine("astar", relaxGrid, opts)}
}

// Name returns "astar".
func (a *AStar) Name() string { return a.e.name }

// FindPath returns an 8-connected path from start to dest on f, where
// orthogonal steps cost 10 and diagonal steps 14. The path is minimum-cost
// when the Finder was built WithHeuristic(Octile).
// A nil Result with nil error means dest is unreachable.
func (a *AStar) FindPath(f *layout.Floor, start, dest layout.Coordinate) (*Result, error) {
	return a.e.find(context.Background(), f, start, dest)
}

// FindPathContext is FindPath that stops with ctx.Err() once ctx is done.
func (a *AStar) FindPathContext(ctx context.Context, f *layout.Floor, start, dest layout.Coordinate) (*Result, error) {
	return a.e.find(ctx, f, start, dest)
}

// relaxGrid proposes reaching v through u with the 10/14 step cost.
func relaxGrid(r *runner, u, v int) (int, int) {
	return r.nodes[u].g + stepCost(r.floor.Width, u, v), u
}

// stepCost is DiagonalCost when u and v differ in both axes, else StraightCost.
func stepCost(width, u, v int) int {
	if u%width != v%width && u/width != v/width {
		return DiagonalCost
	}

	return StraightCost
}
