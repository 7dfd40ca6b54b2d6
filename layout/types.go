package layout

import "fmt"

// Coordinate addresses a cell: X and Y index within a floor, Z selects the floor.
// Coordinates compare by value and are usable as map keys.
type Coordinate struct {
	X, Y, Z int
}

// At is a shorthand constructor for Coordinate{X: x, Y: y, Z: z}.
func At(x, y, z int) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// String renders the coordinate as "(x,y,z)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// KindPlain is an ordinary floor cell.
	KindPlain Kind = iota
	// KindConnector is a cell that links to cells on other floors.
	KindConnector
)

// ConnectorType classifies how a connector moves people between floors.
type ConnectorType uint8

const (
	// ConnectorNone is an untyped connector.
	ConnectorNone ConnectorType = iota
	// ConnectorStairs is a staircase.
	ConnectorStairs
	// ConnectorElevator is an elevator shaft.
	ConnectorElevator
)

// String returns "None", "Stairs", "Elevator" or "Unknown".
func (t ConnectorType) String() string {
	switch t {
	case ConnectorNone:
		return "None"
	case ConnectorStairs:
		return "Stairs"
	case ConnectorElevator:
		return "Elevator"
	default:
		return "Unknown"
	}
}

// Connector holds the data specific to connector cells.
// ID is dense (0..N-1) and assigned by NewBuilding; At is filled by NewFloor.
// Links are kept sorted by (Z, Y, X) once part of a Building.
type Connector struct {
	ID    int
	Type  ConnectorType
	At    Coordinate
	Links []Coordinate
}

// Cell is a grid cell. A nil Connector marks a plain cell.
type Cell struct {
	Walkable  bool
	Connector *Connector
}

// Plain returns a plain cell.
func Plain(walkable bool) Cell {
	return Cell{Walkable: walkable}
}

// NewConnector returns a connector cell of type t linked to the given coordinates.
func NewConnector(walkable bool, t ConnectorType, links ...Coordinate) Cell {
	ls := make([]Coordinate, len(links))
	copy(ls, links)

	return Cell{Walkable: walkable, Connector: &Connector{Type: t, Links: ls}}
}

// Kind reports which variant the cell holds.
func (c Cell) Kind() Kind {
	if c.Connector != nil {
		return KindConnector
	}

	return KindPlain
}

// Link joins two connector cells; NewBuilding records it in both directions.
type Link struct {
	A, B Coordinate
}

// Floor is an immutable W×H grid of cells for level Z, stored row-major.
type Floor struct {
	Width, Height int
	Z             int
	cells         []Cell
}
