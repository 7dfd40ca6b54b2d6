// Package floorpath computes walking routes through multi-floor buildings
// laid out as voxel grids.
//
// Each floor is a grid of walkable and blocked cells. Connector cells, such as
// stairs and elevators, link cells on different floors. Queries on one floor
// run A* or Theta*. Queries across floors chain those searches through the
// connector sequences that join the two floors.
//
// Packages:
//
//	layout/     Coordinate, Cell, Floor, Building, character-grid parsing,
//	            link validation, walkable regions
//	frontier/   generic indexed min-heap with FIFO tie-break
//	pathfind/   A*, Theta*, line of sight, visibility masks
//	connector/  connector graph and sequence enumeration
//	sequencer/  cross-floor orchestrator and route selection policies
//	cmd/floorpath  command-line host driven by a viper configuration
//
// Quick start:
//
//	b, _ := layout.ParseBuilding([][]string{
//		{"OOS", "OOO"},
//		{"OOS", "OXO"},
//	}, layout.Link{A: layout.At(2, 0, 0), B: layout.At(2, 0, 1)})
//	s, _ := sequencer.New(b)
//	route, _ := s.FindPath(layout.At(0, 1, 0), layout.At(0, 1, 1))
//
// Costs are integers: 10 for an orthogonal step, 14 for a diagonal one.
// A missing route is a nil result with a nil error.
package floorpath
