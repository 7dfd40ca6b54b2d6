package pathfind

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/floorpath/frontier"
	"github.com/katalvlaran/floorpath/internal/telemetry"
	"github.com/katalvlaran/floorpath/layout"
)

const (
	infinity = math.MaxInt
	noParent = -1
)

// Arena cell states.
const (
	unseen uint8 = iota
	inOpen
	inClosed
)

// node is the per-search scratch record of one cell.
type node struct {
	g, h   int
	parent int
	state  uint8
}

// relaxFunc proposes a new g and parent for neighbour v reached from u.
// The runner applies the proposal only if it improves v.
type relaxFunc func(r *runner, u, v int) (g, parent int)

// engine holds what a Finder keeps between searches.
type engine struct {
	name     string
	relax    relaxFunc
	estimate Heuristic
	log      zerolog.Logger
	runs     metric.Int64Counter
	expanded metric.Int64Counter
}

func newEngine(name string, relax relaxFunc, opts []Option) engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return engine{
		name:     name,
		relax:    relax,
		estimate: cfg.Heuristic,
		log:      cfg.Logger,
		runs:     telemetry.Counter(cfg.Meter, telemetry.SearchRuns, "Floor searches executed"),
		expanded: telemetry.Counter(cfg.Meter, telemetry.SearchExpanded, "Cells expanded by floor searches"),
	}
}

// find validates the query and runs one search with a fresh arena.
func (e *engine) find(ctx context.Context, f *layout.Floor, start, dest layout.Coordinate) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validate(f, start, dest); err != nil {
		return nil, err
	}

	r := &runner{
		floor:    f,
		ctx:      ctx,
		relax:    e.relax,
		estimate: e.estimate,
		nodes:    make([]node, f.Len()),
		dest:     f.Index(dest.X, dest.Y),
		destX:    dest.X,
		destY:    dest.Y,
	}
	r.open = frontier.New(r.compare)

	var res *Result
	var err error
	if f.Walkable(dest.X, dest.Y) {
		res, err = r.run(f.Index(start.X, start.Y))
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", e.name),
		attribute.Bool("found", res != nil),
	)
	e.runs.Add(ctx, 1, attrs)
	e.expanded.Add(ctx, int64(r.expanded), attrs)

	ev := e.log.Debug().
		Str("algorithm", e.name).
		Stringer("start", start).
		Stringer("dest", dest).
		Int("expanded", r.expanded).
		Bool("found", res != nil)
	if res != nil {
		ev = ev.Int("cost", res.Cost).Int("cells", len(res.Path))
	}
	ev.Msg("floor search finished")

	return res, err
}

func validate(f *layout.Floor, start, dest layout.Coordinate) error {
	if f == nil {
		return ErrNilFloor
	}
	for _, c := range [2]layout.Coordinate{start, dest} {
		if c.Z != f.Z {
			return fmt.Errorf("%w: %v on floor %d", ErrWrongFloor, c, f.Z)
		}
		if !f.InBounds(c.X, c.Y) {
			return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, f.Width, f.Height)
		}
	}

	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	floor        *layout.Floor
	ctx          context.Context
	relax        relaxFunc
	estimate     Heuristic
	nodes        []node
	open         *frontier.Queue[int]
	dest         int
	destX, destY int
	expanded     int
}

// compare orders open cells by f = g + h.
func (r *runner) compare(a, b int) int {
	fa := r.nodes[a].g + r.nodes[a].h
	fb := r.nodes[b].g + r.nodes[b].h

	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// heuristic estimates the cost from (x,y) to dest.
func (r *runner) heuristic(x, y int) int {
	return r.estimate(abs(x-r.destX), abs(y-r.destY))
}

// run is the main loop: pop the best open cell, stop at dest, otherwise
// close it and relax its walkable, unclosed neighbours.
func (r *runner) run(start int) (*Result, error) {
	sx, sy := r.xy(start)
	r.nodes[start] = node{g: 0, h: r.heuristic(sx, sy), parent: noParent, state: inOpen}
	r.open.Push(start)

	for {
		u, ok := r.open.Pop()
		if !ok {
			return nil, nil
		}

		select {
		case <-r.ctx.Done():
			return nil, r.ctx.Err()
		default:
		}

		if u == r.dest {
			return r.result(), nil
		}
		r.nodes[u].state = inClosed
		r.expanded++

		ux, uy := r.xy(u)
		for _, d := range layout.NeighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !r.floor.Walkable(vx, vy) {
				continue
			}
			v := r.floor.Index(vx, vy)
			nv := &r.nodes[v]
			if nv.state == inClosed {
				continue
			}
			if nv.state == unseen {
				nv.g, nv.h, nv.parent = infinity, r.heuristic(vx, vy), noParent
			}

			g, parent := r.relax(r, u, v)
			if g >= nv.g {
				continue
			}
			// Remove before the priority changes, then reinsert.
			if nv.state == inOpen {
				r.open.Remove(v)
			}
			nv.g, nv.parent, nv.state = g, parent, inOpen
			r.open.Push(v)
		}
	}
}

// result walks parent links back from dest.
func (r *runner) result() *Result {
	var path []layout.Coordinate
	for i := r.dest; i != noParent; i = r.nodes[i].parent {
		path = append(path, r.floor.Coordinate(i))
	}
	slices.Reverse(path)

	return &Result{Path: path, Cost: r.nodes[r.dest].g, Expanded: r.expanded}
}

func (r *runner) xy(i int) (int, int) {
	return i % r.floor.Width, i / r.floor.Width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
