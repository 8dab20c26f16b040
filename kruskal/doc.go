// Package kruskal provides Kruskal's minimum spanning forest over the road
// network of a core.Realm, and the union-find structure it runs on.
//
// What:
//
//   - Forest:     compute the kept roads and their total, read-only.
//   - TrimRoads:  replace every road with the forest; return its total.
//   - UnionFind:  disjoint sets keyed by core.Handle, with path compression
//     and union by size.
//
// Determinism:
//
//	Roads are sorted by length with a stable sort, so among equal lengths the
//	road added earlier is preferred. The trimmed network lists roads in the
//	order Kruskal accepted them.
//
// Invariants after TrimRoads:
//
//   - kept roads = towns − connected components
//   - no cycles remain; connectivity between any two towns is unchanged
//
// Complexity: O(R log R + R·α(V)) time, O(R + V) memory.
//
// Errors:
//
//   - ErrRealmNil if the realm pointer is nil.
package kruskal
