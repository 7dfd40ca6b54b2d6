package pathfind

import (
	"context"
	"math"

	"github.com/katalvlaran/floorpath/layout"
)

// ThetaStar is the any-angle Finder. It is stateless between calls and safe
// for concurrent use.
type ThetaStar struct {
	e engine
}

// NewThetaStar returns a Theta* Finder.
func NewThetaStar(opts ...Option) *ThetaStar {
	return &ThetaStar{e: newEngine("thetastar", relaxAnyAngle, opts)}
}

// Name returns "thetastar".
func (t *ThetaStar) Name() string { return t.e.name }

// FindPath returns a path from start to dest on f whose consecutive cells are
// mutually visible. Consecutive cells need not be adjacent.
// A nil Result with nil error means dest is unreachable.
func (t *ThetaStar) FindPath(f *layout.Floor, start, dest layout.Coordinate) (*Result, error) {
	return t.e.find(context.Background(), f, start, dest)
}

// FindPathContext is FindPath that stops with ctx.Err() once ctx is done.
func (t *ThetaStar) FindPathContext(ctx context.Context, f *layout.Floor, start, dest layout.Coordinate) (*Result, error) {
	return t.e.find(ctx, f, start, dest)
}

// relaxAnyAngle tries the segment parent(u) -> v first. When u has a parent
// that sees v, only that segment is proposed; otherwise it falls back to the
// grid step u -> v.
func relaxAnyAngle(r *runner, u, v int) (int, int) {
	p := r.nodes[u].parent
	if p != noParent {
		px, py := r.xy(p)
		vx, vy := r.xy(v)
		if lineOfSight(r.floor, px, py, vx, vy) {
			return r.nodes[p].g + segmentCost(px, py, vx, vy), p
		}
	}

	return relaxGrid(r, u, v)
}

// segmentCost is ⌊10 × sqrt(|Δx| + |Δy|)⌋, the any-angle segment estimate.
func segmentCost(x0, y0, x1, y1 int) int {
	return int(StraightCost * math.Sqrt(float64(abs(x1-x0)+abs(y1-y0))))
}
