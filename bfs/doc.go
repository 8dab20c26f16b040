// Package bfs provides breadth-first search over the road network of a
// core.Realm.
//
// What
//
//   - FewestRoads: a route between two towns using the minimum number of roads.
//   - Walk:        every town reachable from a start, with its road count.
//   - Functional options: WithContext, WithMaxDepth, WithOnVisit.
//
// Why
//
//   - Road lengths are ignored, so the frontier order alone guarantees the
//     first discovery of a town is by a fewest-roads route.
//   - Walk doubles as a connected-component probe.
//
// Determinism
//
//	Neighbours are expanded in road insertion order, so among equally short
//	routes the one discovered first is returned, reproducibly.
//
// Complexity (V = towns, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue and traversal context)
//
// Usage
//
//	route, err := bfs.FewestRoads(r, "A", "C")
//	if errors.Is(err, core.ErrTownNotFound) {
//	    // route == []core.TownID{core.NoTownID}
//	}
//
//	res, err := bfs.Walk(r, "A", bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrRealmNil           if the realm pointer is nil.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrTownNotFound  if an endpoint is absent.
//   - Context errors and wrapped OnVisit errors.
package bfs
