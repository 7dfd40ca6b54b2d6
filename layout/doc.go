// Package layout models a multi-floor building as stacked 2D grids of cells,
// the input consumed by the floor searches and the cross-floor sequencer.
//
// What:
//
//   - Coordinate is an (X, Y, Z) value; X/Y index a cell within a floor, Z selects the floor.
//   - Cell is a tagged variant: a plain cell carries only walkability,
//     a connector cell (stairs, elevator) additionally carries a *Connector.
//   - Floor is an immutable W×H row-major array of cells.
//   - Building is an ordered list of floors (index = Z) plus the validated
//     connector index. Connector links form an undirected graph between floors.
//
// Construction:
//
//   - NewFloor deep-copies a [][]Cell (rows indexed by Y).
//   - ParseFloor builds a floor from character rows:
//     'O' walkable, 'X' blocked, 'S' stairs, 'E' elevator, 'C' untyped connector.
//   - NewBuilding clones the floors, merges extra Links, assigns dense connector
//     IDs in (Z, Y, X) order and validates the link graph.
//   - ParseBuilding combines ParseFloor and NewBuilding.
//
// Regions labels the 8-connected walkable areas of a floor; a Building keeps
// one per floor so callers can rule out unreachable legs without searching.
//
// Errors:
//
//   - ErrEmptyGrid:          floor has no rows or no columns.
//   - ErrNonRectangular:     rows have differing lengths.
//   - ErrUnknownSymbol:      ParseFloor met a character it does not know.
//   - ErrNoFloors:           NewBuilding got no floors.
//   - ErrFloorIndex:         floor i does not carry Z == i.
//   - ErrFloorSizeMismatch:  floors differ in Width or Height.
//   - ErrDanglingLink:       a link targets a missing or non-connector cell.
//   - ErrSelfLink:           a connector links to itself.
//   - ErrSameFloorLink:      a link joins two connectors on the same floor.
//   - ErrAsymmetricLink:     a link is not reciprocated by its target.
//
// Complexity:
//
//   - NewFloor, ParseFloor: O(W×H) time and memory.
//   - NewBuilding:          O(Z×W×H + L log L) where L is the number of links.
//   - Floor.Regions:        O(W×H).
package layout
