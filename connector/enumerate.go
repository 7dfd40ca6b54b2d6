package connector

import (
	"fmt"
	"slices"
)

// frame is one connector on the current route.
type frame struct {
	id    int
	next  []int // candidates still to try
	links bool  // next holds link neighbours rather than transfers
	stay  bool  // entered by a transfer onto the same connector
}

// walker holds the state of one enumeration.
type walker struct {
	g       *Graph
	opts    Options
	dest    int
	visited []bool
	stack   []frame
	out     []Sequence
}

// Enumerate returns every connector sequence from startFloor to destFloor.
// Roots are the connectors of startFloor in ascending ID order; each root
// gets a fresh visited set. Link neighbours are tried in ascending ID order.
// A root already on destFloor is recorded as a one-connector sequence.
//
// On cancellation or a hook error, the sequences recorded so far are
// returned together with the error.
func Enumerate(g *Graph, startFloor, destFloor int, opts ...Option) ([]Sequence, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	for _, z := range [2]int{startFloor, destFloor} {
		if z < 0 || z >= g.NumFloors() {
			return nil, fmt.Errorf("%w: %d of %d", ErrFloorNotFound, z, g.NumFloors())
		}
	}

	w := &walker{
		g:       g,
		opts:    o,
		dest:    destFloor,
		visited: make([]bool, g.Len()),
	}
	for _, root := range g.OnFloor(startFloor) {
		clear(w.visited)
		done, err := w.walk(root)
		if err != nil {
			return w.out, err
		}
		if done {
			break
		}
	}

	return w.out, nil
}

// walk runs the explicit-stack search from root. It reports true once
// MaxSequences is reached.
func (w *walker) walk(root int) (bool, error) {
	done, err := w.enter(root, false, false)
	if done || err != nil {
		return done, err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			w.stack = w.stack[:0]

			return false, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if len(top.next) == 0 {
			if !top.stay {
				w.visited[top.id] = false
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		id := top.next[0]
		top.next = top.next[1:]
		stay := id == top.id
		if w.visited[id] && !stay {
			continue
		}
		// A link neighbour continues with transfers and vice versa.
		if done, err = w.enter(id, top.links, stay); done || err != nil {
			w.stack = w.stack[:0]

			return done, err
		}
	}

	return false, nil
}

// enter records id if it is on the destination floor, otherwise pushes it.
func (w *walker) enter(id int, byLink, stay bool) (bool, error) {
	if w.g.floorOf(id) == w.dest {
		return w.record(id)
	}
	if w.opts.MaxDepth > 0 && len(w.stack)+1 >= w.opts.MaxDepth {
		return false, nil
	}

	f := frame{id: id, stay: stay}
	if w.opts.Transfers && byLink {
		f.next = w.transfers(id)
	} else {
		f.next, f.links = w.g.Links(id), true
	}
	w.visited[id] = true
	w.stack = append(w.stack, f)

	return false, nil
}

// transfers lists id itself followed by the other connectors on its floor.
// Staying on id lets a shaft continue to the next floor.
func (w *walker) transfers(id int) []int {
	same := w.g.OnFloor(w.g.floorOf(id))
	next := make([]int, 0, len(same))
	next = append(next, id)
	for _, other := range same {
		if other != id {
			next = append(next, other)
		}
	}

	return next
}

// record stores stack + id as a sequence and runs the hook.
func (w *walker) record(id int) (bool, error) {
	seq := make(Sequence, 0, len(w.stack)+1)
	for _, f := range w.stack {
		seq = append(seq, w.g.nodes[f.id].At)
	}
	seq = append(seq, w.g.nodes[id].At)
	w.out = append(w.out, seq)

	if w.opts.OnSequence != nil {
		if err := w.opts.OnSequence(slices.Clone(seq)); err != nil {
			return false, fmt.Errorf("connector: OnSequence hook: %w", err)
		}
	}

	return w.opts.MaxSequences > 0 && len(w.out) >= w.opts.MaxSequences, nil
}
