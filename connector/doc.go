// Package connector indexes the connector cells of a layout.Building and
// enumerates the connector sequences that lead from one floor to another.
//
// What:
//
//   - Graph: connectors by dense ID, their link neighbours (sorted by ID) and
//     the connectors of each floor.
//   - Enumerate(g, startFloor, destFloor, opts...): exhaustive depth-first
//     search from every connector on startFloor, in ascending ID order.
//     Reaching a connector on destFloor records the current route and
//     backtracks; every simple route is recorded independently.
//
// Transfers:
//
// By default the search only follows links, which join connectors on
// different floors. WithTransfers lets the search alternate a link with a
// same-floor transfer to another connector, so a route such as
// stairs 0->1, walk across floor 1, stairs 1->2 is produced as the even
// sequence [s0, s1, t1, t2].
//
// Complexity:
//
//   - NewGraph:  O(C + L) for C connectors and L links.
//   - Enumerate: exponential in the connector graph's branching; every simple
//     route is visited. Use WithMaxDepth and WithMaxSequences to bound it.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per step.
//   - WithMaxDepth(n)         longest recorded sequence, n >= 1.
//   - WithMaxSequences(n)     stop after n sequences, n >= 1.
//   - WithOnSequence(fn)      hook per recorded sequence; an error aborts.
//   - WithTransfers()         alternate links with same-floor transfers.
//
// Errors:
//
//   - ErrGraphNil             g is nil.
//   - ErrFloorNotFound        startFloor or destFloor is not a floor of g.
//   - context.Canceled        ctx is done.
//   - any error returned by the OnSequence hook, wrapped.
package connector
