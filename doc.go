// Package realm is a small in-memory model of a feudal map: towns with
// coordinates and taxes, a master/vassal forest over them, and an undirected
// road network whose road lengths are the floored distances between towns.
//
// Packages:
//
//	geo        coordinates, floored Euclidean distance, origin ordering
//	core       the Realm: town registry, vassal forest, road network
//	traversal  per-query search state (visited bitset, predecessors, costs)
//	vassal     taxer paths, longest vassal chains, net tax
//	bfs        fewest-roads routes and reachability walks
//	dfs        cycle detection and arbitrary routes
//	astar      shortest routes by total road length, plus Dijkstra
//	kruskal    minimum spanning forest and road trimming
//	scenario   YAML scenario files that populate a Realm
//	cmd/realm  command-line front end over a scenario
//
// Quick start:
//
//	r := core.New()
//	_ = r.AddTown("A", "Aurora", geo.Coord{X: 0, Y: 0}, 100)
//	_ = r.AddTown("B", "Brill", geo.Coord{X: 3, Y: 4}, 50)
//	_ = r.AddRoad("A", "B")
//	route, length, err := astar.ShortestRoute(r, "A", "B")
//
// Lookups of an absent town return core.ErrTownNotFound; operations that
// return a town list then yield []core.TownID{core.NoTownID}.
package realm
