package pathfind

import "github.com/katalvlaran/floorpath/layout"

// LineOfSight reports whether a straight line between a and b on f crosses
// only walkable cells. Both endpoints must be walkable cells of f; a cell
// always sees itself. The test is symmetric: LineOfSight(f, a, b) equals
// LineOfSight(f, b, a). A nil floor or a coordinate on another floor
// yields false.
func LineOfSight(f *layout.Floor, a, b layout.Coordinate) bool {
	if f == nil || a.Z != f.Z || b.Z != f.Z {
		return false
	}

	return lineOfSight(f, a.X, a.Y, b.X, b.Y)
}

// Visibility returns mask[y][x] = LineOfSight(f, from, (x,y)) for every cell of f.
// Complexity: O(W×H×(W+H)).
func Visibility(f *layout.Floor, from layout.Coordinate) [][]bool {
	if f == nil {
		return nil
	}
	mask := make([][]bool, f.Height)
	for y := range mask {
		mask[y] = make([]bool, f.Width)
		for x := range mask[y] {
			mask[y][x] = LineOfSight(f, from, layout.Coordinate{X: x, Y: y, Z: f.Z})
		}
	}

	return mask
}

// lineOfSight walks the line along its dominant axis.
//
//   - run == 0:        every cell from min(y) to max(y) inclusive.
//   - |rise| <= |run|: x from the lower-x endpoint up to, not including, the
//     other; y moves by one whenever the doubled error reaches the threshold.
//   - otherwise:       y inclusive from the lower-y endpoint, x likewise.
//
// Iteration always starts from the lower endpoint on the dominant axis, which
// makes the result independent of argument order.
func lineOfSight(f *layout.Floor, x0, y0, x1, y1 int) bool {
	if !f.Walkable(x0, y0) || !f.Walkable(x1, y1) {
		return false
	}
	rise, run := y1-y0, x1-x0

	if run == 0 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			if !f.Walkable(x0, y) {
				return false
			}
		}

		return true
	}

	adjust := 1
	if rise != 0 && (rise < 0) != (run < 0) {
		adjust = -1
	}
	offset := 0

	if abs(rise) <= abs(run) {
		delta, threshold, step := 2*abs(rise), abs(run), 2*abs(run)
		y := y0
		if x1 < x0 {
			x0, x1 = x1, x0
			y = y1
		}
		for x := x0; x < x1; x++ {
			if !f.Walkable(x, y) {
				return false
			}
			offset += delta
			if offset >= threshold {
				y += adjust
				threshold += step
			}
		}

		return true
	}

	delta, threshold, step := 2*abs(run), abs(rise), 2*abs(rise)
	x := x0
	if y1 < y0 {
		y0, y1 = y1, y0
		x = x1
	}
	for y := y0; y <= y1; y++ {
		if !f.Walkable(x, y) {
			return false
		}
		offset += delta
		if offset >= threshold {
			x += adjust
			threshold += step
		}
	}

	return true
}
