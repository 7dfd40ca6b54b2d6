package layout

// Regions labels the 8-connected walkable regions of a floor. It matches the
// reachability of the floor searches: a walkable dest is reachable from start
// exactly when Connected(start, dest) holds.
type Regions struct {
	floor *Floor
	label []int // region per cell, -1 when blocked
	sizes []int
}

// Regions labels f's walkable cells by breadth-first flood fill. Region IDs
// are assigned in row-major order of each region's first cell.
// Time: O(W×H×8). Memory: O(W×H).
func (f *Floor) Regions() *Regions {
	r := &Regions{floor: f, label: make([]int, f.Len())}
	for i := range r.label {
		r.label[i] = -1
	}

	var queue []int
	for i0 := range r.label {
		x0, y0 := i0%f.Width, i0/f.Width
		if r.label[i0] >= 0 || !f.Walkable(x0, y0) {
			continue
		}
		id := len(r.sizes)
		r.label[i0] = id
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := queue[qi]%f.Width, queue[qi]/f.Width
			for _, d := range NeighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !f.Walkable(vx, vy) {
					continue
				}
				if vi := f.Index(vx, vy); r.label[vi] < 0 {
					r.label[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		r.sizes = append(r.sizes, len(queue))
	}

	return r
}

// Count returns the number of regions.
func (r *Regions) Count() int {
	return len(r.sizes)
}

// Size returns the number of cells in region id, 0 if id is unknown.
func (r *Regions) Size(id int) int {
	if id < 0 || id >= len(r.sizes) {
		return 0
	}

	return r.sizes[id]
}

// Of returns the region of (x,y), or -1 for a blocked or out-of-bounds cell.
func (r *Regions) Of(x, y int) int {
	if !r.floor.InBounds(x, y) {
		return -1
	}

	return r.label[r.floor.Index(x, y)]
}

// Connected reports whether a search on the floor can get from a to b.
// b must be walkable. A blocked a can still leave through any walkable
// neighbour, as the searches allow.
func (r *Regions) Connected(a, b Coordinate) bool {
	if a.Z != r.floor.Z || b.Z != r.floor.Z {
		return false
	}
	target := r.Of(b.X, b.Y)
	if target < 0 {
		return false
	}
	if r.Of(a.X, a.Y) == target {
		return true
	}
	if !r.floor.InBounds(a.X, a.Y) || r.floor.Walkable(a.X, a.Y) {
		return false
	}
	for _, d := range NeighborOffsets {
		if r.Of(a.X+d[0], a.Y+d[1]) == target {
			return true
		}
	}

	return false
}
