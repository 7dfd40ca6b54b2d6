package layout

import "fmt"

// NeighborOffsets lists the eight (dx, dy) steps around a cell, dy-major:
// the row above left to right, then left and right, then the row below.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NewFloor constructs floor z from a non-empty, rectangular [][]Cell indexed [y][x].
// It deep-copies the input, including connector data, and stamps each
// connector's At coordinate.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewFloor(z int, rows [][]Cell) (*Floor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	f := &Floor{Width: w, Height: h, Z: z, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rows[y][x]
			if c.Connector != nil {
				c.Connector = cloneConnector(c.Connector)
				c.Connector.At = Coordinate{X: x, Y: y, Z: z}
			}
			f.cells[f.Index(x, y)] = c
		}
	}

	return f, nil
}

// ParseFloor builds floor z from character rows, one string per Y:
//
//	'O' walkable plain cell
//	'X' blocked plain cell
//	'S' walkable stairs connector
//	'E' walkable elevator connector
//	'C' walkable untyped connector
//
// Connectors are created without links; supply them to NewBuilding.
func ParseFloor(z int, rows ...string) (*Floor, error) {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, 0, len(row))
		for x, r := range row {
			switch r {
			case 'O':
				cells[y] = append(cells[y], Plain(true))
			case 'X':
				cells[y] = append(cells[y], Plain(false))
			case 'S':
				cells[y] = append(cells[y], NewConnector(true, ConnectorStairs))
			case 'E':
				cells[y] = append(cells[y], NewConnector(true, ConnectorElevator))
			case 'C':
				cells[y] = append(cells[y], NewConnector(true, ConnectorNone))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d) on floor %d", ErrUnknownSymbol, r, x, y, z)
			}
		}
	}

	return NewFloor(z, cells)
}

// InBounds reports whether (x,y) lies within the floor.
// Complexity: O(1).
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Contains reports whether c lies on this floor and within its bounds.
func (f *Floor) Contains(c Coordinate) bool {
	return c.Z == f.Z && f.InBounds(c.X, c.Y)
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (f *Floor) Index(x, y int) int {
	return y*f.Width + x
}

// Coordinate converts a row-major index back to a coordinate on this floor.
// Complexity: O(1).
func (f *Floor) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % f.Width, Y: idx / f.Width, Z: f.Z}
}

// Len returns the number of cells, Width×Height.
func (f *Floor) Len() int {
	return len(f.cells)
}

// Cell returns the cell at (x,y). Out-of-bounds positions yield a blocked plain cell.
func (f *Floor) Cell(x, y int) Cell {
	if !f.InBounds(x, y) {
		return Cell{}
	}

	return f.cells[f.Index(x, y)]
}

// Walkable reports whether (x,y) is in bounds and walkable.
func (f *Floor) Walkable(x, y int) bool {
	return f.InBounds(x, y) && f.cells[f.Index(x, y)].Walkable
}

// Connectors returns the connectors on this floor in row-major order.
func (f *Floor) Connectors() []*Connector {
	var out []*Connector
	for i := range f.cells {
		if c := f.cells[i].Connector; c != nil {
			out = append(out, c)
		}
	}

	return out
}

// clone deep-copies the floor so a Building can own its connector data.
func (f *Floor) clone() *Floor {
	cp := &Floor{Width: f.Width, Height: f.Height, Z: f.Z, cells: make([]Cell, len(f.cells))}
	copy(cp.cells, f.cells)
	for i := range cp.cells {
		if cp.cells[i].Connector != nil {
			cp.cells[i].Connector = cloneConnector(cp.cells[i].Connector)
		}
	}

	return cp
}

func cloneConnector(c *Connector) *Connector {
	cp := *c
	cp.Links = make([]Coordinate, len(c.Links))
	copy(cp.Links, c.Links)

	return &cp
}
