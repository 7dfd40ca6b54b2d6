// Package sequencer answers path queries across the floors of a
// layout.Building by chaining single-floor searches through connectors.
//
// A query whose start and dest share a floor is handed to the configured
// pathfind.Finder unchanged. Otherwise connector.Enumerate lists the
// connector sequences from start.Z to dest.Z. Odd-length sequences are
// dropped, and each survivor becomes the waypoint list
// start, c1, c2, ..., cn, dest, consumed two at a time:
// (start, c1), (c2, c3), ..., (cn, dest). Each pair is one leg searched on its
// floor; the step from c1 to c2 is the connector itself. A candidate fails
// when a pair spans two floors, when layout.Regions shows a leg's endpoints
// are not connected, or when a leg search finds no path. Candidates are
// evaluated one after another and a Policy picks the winner.
//
// Policies:
//
//   - ShortestCost     lowest summed leg cost, then fewer cells (default).
//   - FewestWaypoints  fewer cells, then lower cost.
//   - FastestCompute   the candidate that took the least wall-clock time to
//     evaluate. Results vary with machine load.
//
// Ties keep the earlier candidate in enumeration order.
//
// No route is a nil *Route with a nil error.
package sequencer
