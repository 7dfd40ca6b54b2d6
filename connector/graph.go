package connector

import "github.com/katalvlaran/floorpath/layout"

// Graph is a read-only index over a building's connectors.
type Graph struct {
	nodes   []*layout.Connector
	links   [][]int
	byFloor [][]int
}

// NewGraph indexes the connectors of b. Link neighbours are ordered by ID.
// A nil b yields a nil *Graph.
func NewGraph(b *layout.Building) *Graph {
	if b == nil {
		return nil
	}
	g := &Graph{
		nodes:   b.Connectors(),
		byFloor: make([][]int, b.NumFloors()),
	}
	g.links = make([][]int, len(g.nodes))
	for _, c := range g.nodes {
		g.byFloor[c.At.Z] = append(g.byFloor[c.At.Z], c.ID)
		// Links are sorted by (Z, Y, X), the order IDs are assigned in.
		ids := make([]int, 0, len(c.Links))
		for _, to := range c.Links {
			if other, ok := b.ConnectorAt(to); ok {
				ids = append(ids, other.ID)
			}
		}
		g.links[c.ID] = ids
	}

	return g
}

// Len returns the number of connectors.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NumFloors returns the number of floors of the indexed building.
func (g *Graph) NumFloors() int {
	return len(g.byFloor)
}

// Connector returns the connector with the given ID.
func (g *Graph) Connector(id int) (*layout.Connector, bool) {
	if id < 0 || id >= len(g.nodes) {
		return nil, false
	}

	return g.nodes[id], true
}

// Links returns the IDs linked to id in ascending order. The slice must not
// be modified.
func (g *Graph) Links(id int) []int {
	if id < 0 || id >= len(g.links) {
		return nil
	}

	return g.links[id]
}

// OnFloor returns the IDs of the connectors on floor z in ascending order.
// The slice must not be modified.
func (g *Graph) OnFloor(z int) []int {
	if z < 0 || z >= len(g.byFloor) {
		return nil
	}

	return g.byFloor[z]
}

func (g *Graph) floorOf(id int) int {
	return g.nodes[id].At.Z
}
