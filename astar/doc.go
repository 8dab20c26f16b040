// Package astar finds minimum-length routes over the road network of a
// core.Realm.
//
// ShortestRoute runs A*: the frontier is ordered by route length so far plus
// the floored straight-line distance to the goal. Road lengths are floored
// distances too, so the heuristic is exact up to the flooring; it can
// overestimate by less than one per road. The search therefore keeps
// draining entries whose route length can still beat the best goal distance
// found, and reopens a town when a shorter route to it appears. The result is
// always a true shortest route.
//
// Dijkstra is the same runner with a zero heuristic and no goal, returning
// the distance to every reachable town. Tests use it as the reference for
// ShortestRoute.
//
// Complexity:
//
//   - Time:  O((V + E) log V) typical; re-expansions are bounded by the
//     flooring slack.
//   - Space: O(V + E) (traversal context plus lazy-decrease-key heap).
//
// Options:
//
//   - WithMaxDistance(d): routes longer than d are not explored.
//
// Errors (sentinel):
//
//   - ErrRealmNil          if the realm pointer is nil.
//   - ErrBadMaxDistance    if MaxDistance < 0.
//   - core.ErrTownNotFound if an endpoint is absent.
//
// Example usage:
//
//	route, length, err := astar.ShortestRoute(r, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(route, length)
package astar
