package layout

import "errors"

var (
	// ErrEmptyGrid indicates the input rows are empty.
	ErrEmptyGrid = errors.New("layout: floor must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("layout: all rows must have the same length")
	// ErrUnknownSymbol indicates ParseFloor met an unsupported character.
	ErrUnknownSymbol = errors.New("layout: unknown cell symbol")
	// ErrNoFloors indicates a building without floors.
	ErrNoFloors = errors.New("layout: building must have at least one floor")
	// ErrFloorIndex indicates a floor whose Z does not match its position.
	ErrFloorIndex = errors.New("layout: floor Z does not match its index")
	// ErrFloorSizeMismatch indicates floors of different dimensions.
	ErrFloorSizeMismatch = errors.New("layout: all floors must share width and height")
	// ErrDanglingLink indicates a link to a cell that is missing or not a connector.
	ErrDanglingLink = errors.New("layout: link target is not a connector")
	// ErrSelfLink indicates a connector linked to itself.
	ErrSelfLink = errors.New("layout: connector links to itself")
	// ErrSameFloorLink indicates a link between connectors on one floor.
	ErrSameFloorLink = errors.New("layout: link must join two different floors")
	// ErrAsymmetricLink indicates a link that its target does not reciprocate.
	ErrAsymmetricLink = errors.New("layout: link is not symmetric")
)
