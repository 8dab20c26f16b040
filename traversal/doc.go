// Package traversal holds the per-query scratch state shared by the road and
// vassal algorithms: a visited set, predecessor links and tentative distances,
// all indexed by core.Handle.
//
// A Context is owned by exactly one query. Reset sizes it to the realm arena
// and clears every field, so stale state from an earlier search can never leak
// into the next one. Nothing is stored on the town records themselves, which
// keeps concurrent read-only queries safe.
//
// A query reads the realm through separate locked calls and does not see a
// single snapshot. A town added mid-query only grows the Context; a query
// racing with mutations may still return a route that mixes both states.
//
// Usage:
//
//	tc := traversal.New(r.Cap())
//	tc.Visit(start)
//	...
//	ids := traversal.IDs(r, tc.PathTo(goal))
//
// Complexity: Reset is O(n) in the arena size; every accessor is O(1).
package traversal
