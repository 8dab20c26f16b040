// Package dfs provides depth-first search over the road network of a
// core.Realm: cycle detection and an arbitrary (not shortest) route.
//
// What:
//
//   - FindCycle: a cycle of roads reachable from a start town, reported as
//     the search path down to the closing town followed by the town it
//     loops back to.
//   - HasCycle:  whether any component of the road network contains a cycle.
//   - AnyRoute:  some route between two towns, the first one the search finds.
//
// How:
//
//	The search keeps an explicit stack of frames, one per town on the
//	current path, each remembering the next road to try. Very long road
//	chains therefore cannot overflow the goroutine stack. Roads are tried
//	in insertion order, so results are reproducible.
//
// Complexity (V = towns, E = roads):
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrRealmNil           if the realm pointer is nil.
//   - core.ErrTownNotFound  if a start or end town is absent; the route is
//     then []core.TownID{core.NoTownID}.
//   - ctx.Err()             if the context passed via WithContext is done.
package dfs
