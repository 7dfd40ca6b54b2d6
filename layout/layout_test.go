package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorpath/layout"
)

//----------------------------------------------------------------------------//
// Floor construction
//----------------------------------------------------------------------------//

// TestNewFloor_Errors verifies that NewFloor rejects empty or ragged inputs.
func TestNewFloor_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]layout.Cell
		err  error
	}{
		{"EmptyRows", [][]layout.Cell{}, layout.ErrEmptyGrid},
		{"EmptyCols", [][]layout.Cell{{}}, layout.ErrEmptyGrid},
		{"NonRectangular", [][]layout.Cell{
			{layout.Plain(true), layout.Plain(true)},
			{layout.Plain(true)},
		}, layout.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.NewFloor(0, tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewFloor_DeepCopy checks that later edits to the input do not leak in.
func TestNewFloor_DeepCopy(t *testing.T) {
	rows := [][]layout.Cell{
		{layout.Plain(true), layout.NewConnector(true, layout.ConnectorStairs, layout.At(0, 0, 1))},
	}
	f, err := layout.NewFloor(0, rows)
	require.NoError(t, err)

	rows[0][0].Walkable = false
	rows[0][1].Connector.Links[0] = layout.At(9, 9, 9)

	assert.True(t, f.Walkable(0, 0))
	conn := f.Cell(1, 0).Connector
	require.NotNil(t, conn)
	assert.Equal(t, layout.At(0, 0, 1), conn.Links[0])
	assert.Equal(t, layout.At(1, 0, 0), conn.At)
}

// TestFloor_Bounds checks InBounds, Walkable and Cell on a 3×2 floor.
func TestFloor_Bounds(t *testing.T) {
	f, err := layout.ParseFloor(2, "OXO", "OOS")
	require.NoError(t, err)
	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 2, f.Height)
	assert.Equal(t, 6, f.Len())

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, f.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, f.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		assert.False(t, f.Walkable(xy[0], xy[1]), "Walkable(%d,%d)", xy[0], xy[1])
		assert.Equal(t, layout.KindPlain, f.Cell(xy[0], xy[1]).Kind())
	}
	assert.False(t, f.Walkable(1, 0))
	assert.True(t, f.Walkable(2, 1))
	assert.Equal(t, layout.KindConnector, f.Cell(2, 1).Kind())

	assert.True(t, f.Contains(layout.At(2, 1, 2)))
	assert.False(t, f.Contains(layout.At(2, 1, 0)))
}

// TestFloor_IndexRoundTrip checks Index and Coordinate are inverse.
func TestFloor_IndexRoundTrip(t *testing.T) {
	f, err := layout.ParseFloor(1, "OOOO", "OOOO", "OOOO")
	require.NoError(t, err)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			assert.Equal(t, layout.At(x, y, 1), f.Coordinate(f.Index(x, y)))
		}
	}
}

// TestParseFloor_Symbols verifies every supported symbol and the unknown-symbol error.
func TestParseFloor_Symbols(t *testing.T) {
	f, err := layout.ParseFloor(0, "OXSEC")
	require.NoError(t, err)

	assert.Equal(t, layout.KindPlain, f.Cell(0, 0).Kind())
	assert.True(t, f.Cell(0, 0).Walkable)
	assert.False(t, f.Cell(1, 0).Walkable)

	want := []layout.ConnectorType{layout.ConnectorStairs, layout.ConnectorElevator, layout.ConnectorNone}
	conns := f.Connectors()
	require.Len(t, conns, 3)
	for i, c := range conns {
		assert.Equal(t, want[i], c.Type)
		assert.Equal(t, layout.At(2+i, 0, 0), c.At)
		assert.True(t, f.Cell(2+i, 0).Walkable)
	}

	_, err = layout.ParseFloor(0, "OO?")
	assert.ErrorIs(t, err, layout.ErrUnknownSymbol)
}

func TestConnectorType_String(t *testing.T) {
	assert.Equal(t, "None", layout.ConnectorNone.String())
	assert.Equal(t, "Stairs", layout.ConnectorStairs.String())
	assert.Equal(t, "Elevator", layout.ConnectorElevator.String())
	assert.Equal(t, "Unknown", layout.ConnectorType(42).String())
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(1,-2,3)", layout.At(1, -2, 3).String())
}

//----------------------------------------------------------------------------//
// Building construction and link validation
//----------------------------------------------------------------------------//

func twoFloors(t *testing.T) []*layout.Floor {
	t.Helper()
	f0, err := layout.ParseFloor(0, "OOS", "OOO")
	require.NoError(t, err)
	f1, err := layout.ParseFloor(1, "OOS", "OEO")
	require.NoError(t, err)

	return []*layout.Floor{f0, f1}
}

// TestNewBuilding_AssignsIDsAndLinks checks ID order and symmetric link merging.
func TestNewBuilding_AssignsIDsAndLinks(t *testing.T) {
	floors := twoFloors(t)
	b, err := layout.NewBuilding(floors,
		layout.Link{A: layout.At(2, 0, 0), B: layout.At(2, 0, 1)},
		layout.Link{A: layout.At(2, 0, 1), B: layout.At(2, 0, 0)}, // duplicate collapses
	)
	require.NoError(t, err)

	assert.Equal(t, 2, b.NumFloors())
	assert.Equal(t, 3, b.NumConnectors())

	conns := b.Connectors()
	assert.Equal(t, layout.At(2, 0, 0), conns[0].At)
	assert.Equal(t, layout.At(2, 0, 1), conns[1].At)
	assert.Equal(t, layout.At(1, 1, 1), conns[2].At)
	for i, c := range conns {
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, []layout.Coordinate{layout.At(2, 0, 1)}, conns[0].Links)
	assert.Equal(t, []layout.Coordinate{layout.At(2, 0, 0)}, conns[1].Links)
	assert.Empty(t, conns[2].Links)

	c, ok := b.ConnectorAt(layout.At(2, 0, 1))
	require.True(t, ok)
	assert.Equal(t, 1, c.ID)
	_, ok = b.Connector(3)
	assert.False(t, ok)

	// The input floors are untouched.
	assert.Empty(t, floors[0].Connectors()[0].Links)
}

func TestNewBuilding_FloorErrors(t *testing.T) {
	_, err := layout.NewBuilding(nil)
	assert.ErrorIs(t, err, layout.ErrNoFloors)

	f0, _ := layout.ParseFloor(0, "OO")
	f1, _ := layout.ParseFloor(1, "OO")
	_, err = layout.NewBuilding([]*layout.Floor{f1, f0})
	assert.ErrorIs(t, err, layout.ErrFloorIndex)

	wide, _ := layout.ParseFloor(1, "OOO")
	_, err = layout.NewBuilding([]*layout.Floor{f0, wide})
	assert.ErrorIs(t, err, layout.ErrFloorSizeMismatch)
}

func TestNewBuilding_LinkErrors(t *testing.T) {
	cases := []struct {
		name  string
		links []layout.Link
		err   error
	}{
		{"MissingTarget", []layout.Link{{A: layout.At(2, 0, 0), B: layout.At(0, 0, 1)}}, layout.ErrDanglingLink},
		{"OutOfBuilding", []layout.Link{{A: layout.At(2, 0, 0), B: layout.At(2, 0, 7)}}, layout.ErrDanglingLink},
		{"Self", []layout.Link{{A: layout.At(2, 0, 0), B: layout.At(2, 0, 0)}}, layout.ErrSelfLink},
		{"SameFloor", []layout.Link{{A: layout.At(2, 0, 1), B: layout.At(1, 1, 1)}}, layout.ErrSameFloorLink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.NewBuilding(twoFloors(t), tc.links...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewBuilding_Asymmetric covers one-way links declared directly on cells.
func TestNewBuilding_Asymmetric(t *testing.T) {
	f0, err := layout.NewFloor(0, [][]layout.Cell{
		{layout.NewConnector(true, layout.ConnectorStairs, layout.At(0, 0, 1))},
	})
	require.NoError(t, err)
	f1, err := layout.NewFloor(1, [][]layout.Cell{
		{layout.NewConnector(true, layout.ConnectorStairs)},
	})
	require.NoError(t, err)

	_, err = layout.NewBuilding([]*layout.Floor{f0, f1})
	assert.ErrorIs(t, err, layout.ErrAsymmetricLink)

	// A cell-declared link pointing at a plain cell is dangling.
	f2, err := layout.NewFloor(1, [][]layout.Cell{{layout.Plain(true)}})
	require.NoError(t, err)
	_, err = layout.NewBuilding([]*layout.Floor{f0, f2})
	assert.ErrorIs(t, err, layout.ErrDanglingLink)
}

func TestBuilding_Contains(t *testing.T) {
	b, err := layout.NewBuilding(twoFloors(t))
	require.NoError(t, err)
	assert.True(t, b.Contains(layout.At(0, 0, 0)))
	assert.True(t, b.Contains(layout.At(2, 1, 1)))
	assert.False(t, b.Contains(layout.At(3, 0, 0)))
	assert.False(t, b.Contains(layout.At(0, 0, 2)))
	assert.False(t, b.Contains(layout.At(0, 0, -1)))

	_, ok := b.Floor(2)
	assert.False(t, ok)
}

func TestParseBuilding(t *testing.T) {
	b, err := layout.ParseBuilding([][]string{
		{"OS", "OO"},
		{"OE", "XO"},
	}, layout.Link{A: layout.At(1, 0, 0), B: layout.At(1, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 2, b.NumFloors())
	assert.Equal(t, 2, b.NumConnectors())

	f1, ok := b.Floor(1)
	require.True(t, ok)
	assert.False(t, f1.Walkable(0, 1))
	assert.Equal(t, layout.ConnectorElevator, f1.Cell(1, 0).Connector.Type)

	_, err = layout.ParseBuilding([][]string{{"OQ"}})
	assert.ErrorIs(t, err, layout.ErrUnknownSymbol)

	_, err = layout.ParseBuilding(nil)
	assert.ErrorIs(t, err, layout.ErrNoFloors)
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestFloor_Regions(t *testing.T) {
	f, err := layout.ParseFloor(0,
		"OOXO",
		"XXXO",
		"OXOX",
		"XXXX",
	)
	require.NoError(t, err)
	r := f.Regions()

	// (0,0)+(1,0); (3,0)+(3,1)+(2,2) through the diagonal; (0,2) alone.
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 0, r.Of(0, 0))
	assert.Equal(t, 1, r.Of(3, 0))
	assert.Equal(t, 1, r.Of(2, 2))
	assert.Equal(t, 2, r.Of(0, 2))
	assert.Equal(t, -1, r.Of(2, 0))
	assert.Equal(t, -1, r.Of(4, 0))
	assert.Equal(t, 2, r.Size(0))
	assert.Equal(t, 3, r.Size(1))
	assert.Equal(t, 1, r.Size(2))
	assert.Zero(t, r.Size(7))

	assert.True(t, r.Connected(layout.At(3, 0, 0), layout.At(2, 2, 0)))
	assert.False(t, r.Connected(layout.At(0, 0, 0), layout.At(3, 0, 0)))
	assert.True(t, r.Connected(layout.At(1, 1, 0), layout.At(0, 2, 0)), "blocked start leaves through a neighbour")
	assert.False(t, r.Connected(layout.At(0, 0, 0), layout.At(2, 0, 0)), "blocked dest")
	assert.False(t, r.Connected(layout.At(0, 0, 1), layout.At(1, 0, 1)), "other floor")
}

func TestBuilding_Regions(t *testing.T) {
	b, err := layout.NewBuilding(twoFloors(t))
	require.NoError(t, err)
	r, ok := b.Regions(1)
	require.True(t, ok)
	assert.Equal(t, 1, r.Count())
	_, ok = b.Regions(2)
	assert.False(t, ok)
}
