package sequencer

import (
	"fmt"
	"strings"
)

// Policy reports whether candidate should replace best.
type Policy func(candidate, best *Route) bool

// ShortestCost prefers the lower total cost, then the shorter path.
func ShortestCost(candidate, best *Route) bool {
	if candidate.Cost != best.Cost {
		return candidate.Cost < best.Cost
	}

	return len(candidate.Path) < len(best.Path)
}

// FewestWaypoints prefers the shorter path, then the lower cost.
func FewestWaypoints(candidate, best *Route) bool {
	if len(candidate.Path) != len(best.Path) {
		return len(candidate.Path) < len(best.Path)
	}

	return candidate.Cost < best.Cost
}

// FastestCompute prefers the route that was evaluated faster.
func FastestCompute(candidate, best *Route) bool {
	return candidate.Elapsed < best.Elapsed
}

// PolicyByName resolves "shortest-cost", "fewest-waypoints" or
// "fastest-compute", ignoring case.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "shortest-cost":
		return ShortestCost, nil
	case "fewest-waypoints":
		return FewestWaypoints, nil
	case "fastest-compute":
		return FastestCompute, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
