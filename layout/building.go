package layout

import (
	"fmt"
	"slices"
)

// Building is an ordered stack of floors (index = Z) with a validated
// connector index. It is immutable once built and safe for concurrent reads.
type Building struct {
	floors     []*Floor
	regions    []*Regions
	connectors []*Connector
	byCoord    map[Coordinate]*Connector
}

// NewBuilding assembles floors into a building. Floor i must have Z == i and
// all floors must share dimensions. Each Link is added to both endpoints,
// duplicate links collapse, and connector IDs are assigned in (Z, Y, X) order.
//
// Validation (in order): ErrNoFloors, ErrFloorIndex, ErrFloorSizeMismatch,
// then per link ErrDanglingLink, ErrSelfLink, ErrSameFloorLink, ErrAsymmetricLink.
// Input floors are not modified.
func NewBuilding(floors []*Floor, links ...Link) (*Building, error) {
	if len(floors) == 0 {
		return nil, ErrNoFloors
	}
	b := &Building{
		floors:  make([]*Floor, len(floors)),
		regions: make([]*Regions, len(floors)),
		byCoord: make(map[Coordinate]*Connector),
	}
	for z, f := range floors {
		if f == nil || f.Z != z {
			return nil, fmt.Errorf("%w: position %d", ErrFloorIndex, z)
		}
		if f.Width != floors[0].Width || f.Height != floors[0].Height {
			return nil, fmt.Errorf("%w: floor %d is %dx%d, floor 0 is %dx%d",
				ErrFloorSizeMismatch, z, f.Width, f.Height, floors[0].Width, floors[0].Height)
		}
		b.floors[z] = f.clone()
		b.regions[z] = b.floors[z].Regions()
		for _, c := range b.floors[z].Connectors() {
			c.ID = len(b.connectors)
			b.connectors = append(b.connectors, c)
			b.byCoord[c.At] = c
		}
	}

	for _, l := range links {
		a, ok := b.byCoord[l.A]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrDanglingLink, l.A)
		}
		c, ok := b.byCoord[l.B]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrDanglingLink, l.B)
		}
		a.Links = append(a.Links, c.At)
		c.Links = append(c.Links, a.At)
	}

	for _, c := range b.connectors {
		slices.SortFunc(c.Links, compareCoordinates)
		c.Links = slices.Compact(c.Links)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// validate checks every link: target exists and is a connector, no self links,
// no same-floor links, and every link is reciprocated.
func (b *Building) validate() error {
	for _, c := range b.connectors {
		for _, to := range c.Links {
			if to == c.At {
				return fmt.Errorf("%w: %v", ErrSelfLink, c.At)
			}
			other, ok := b.byCoord[to]
			if !ok {
				return fmt.Errorf("%w: %v -> %v", ErrDanglingLink, c.At, to)
			}
			if to.Z == c.At.Z {
				return fmt.Errorf("%w: %v -> %v", ErrSameFloorLink, c.At, to)
			}
			if _, found := slices.BinarySearchFunc(other.Links, c.At, compareCoordinates); !found {
				return fmt.Errorf("%w: %v -> %v", ErrAsymmetricLink, c.At, to)
			}
		}
	}

	return nil
}

// NumFloors returns the number of floors.
func (b *Building) NumFloors() int {
	return len(b.floors)
}

// Floor returns floor z, or false if z is out of range.
func (b *Building) Floor(z int) (*Floor, bool) {
	if z < 0 || z >= len(b.floors) {
		return nil, false
	}

	return b.floors[z], true
}

// Regions returns the walkable regions of floor z, or false if z is out of range.
func (b *Building) Regions(z int) (*Regions, bool) {
	if z < 0 || z >= len(b.regions) {
		return nil, false
	}

	return b.regions[z], true
}

// Contains reports whether c addresses a cell of the building.
func (b *Building) Contains(c Coordinate) bool {
	f, ok := b.Floor(c.Z)

	return ok && f.InBounds(c.X, c.Y)
}

// NumConnectors returns the number of connector cells across all floors.
func (b *Building) NumConnectors() int {
	return len(b.connectors)
}

// Connectors returns all connectors ordered by ID. The slice is a copy;
// the connectors themselves must be treated as read-only.
func (b *Building) Connectors() []*Connector {
	return slices.Clone(b.connectors)
}

// Connector returns the connector with the given ID.
func (b *Building) Connector(id int) (*Connector, bool) {
	if id < 0 || id >= len(b.connectors) {
		return nil, false
	}

	return b.connectors[id], true
}

// ConnectorAt returns the connector located at c.
func (b *Building) ConnectorAt(c Coordinate) (*Connector, bool) {
	conn, ok := b.byCoord[c]

	return conn, ok
}

func compareCoordinates(a, b Coordinate) int {
	switch {
	case a.Z != b.Z:
		return a.Z - b.Z
	case a.Y != b.Y:
		return a.Y - b.Y
	default:
		return a.X - b.X
	}
}

// ParseBuilding parses one character grid per floor with ParseFloor, floor i
// becoming Z == i, and passes the result to NewBuilding with links.
func ParseBuilding(floors [][]string, links ...Link) (*Building, error) {
	parsed := make([]*Floor, len(floors))
	for z, rows := range floors {
		f, err := ParseFloor(z, rows...)
		if err != nil {
			return nil, err
		}
		parsed[z] = f
	}

	return NewBuilding(parsed, links...)
}
