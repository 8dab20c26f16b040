// Package core provides the in-memory Realm: a registry of towns, the
// master/vassal forest laid over them, and the undirected road network that
// connects them.
//
// Towns live in an arena and are addressed internally by a stable Handle.
// Master/vassal links and road adjacency are stored as handles, never as
// pointers, so removing a town cannot leave a dangling reference behind.
//
// Invariants kept by every mutating method:
//
//   - A town's master, if any, lists the town among its vassals.
//   - The master relation is a forest (no cycles).
//   - Road adjacency is symmetric: A→B with length L iff B→A with length L.
//   - No self-roads and no parallel roads between the same pair.
//   - Every road appears once in the flat road list, as From < To.
//
// Every mutation validates its input completely before touching state, so a
// failed call leaves the registry, forest and road network exactly as they were.
//
// Core Methods:
//
//	// Registry
//	AddTown(id, name, coord, tax) error
//	Name(id) / Coord(id) / Tax(id) / Town(id)
//	Rename(id, name) error
//	Towns() / FindTowns(name) / TownCount()
//	TownsAlphabetically() / TownsByDistance() / TownsNearest(c)
//	MinDistance() / MaxDistance()
//	RemoveTown(id) error / Clear()
//
//	// Vassalship
//	AddVassalship(vassal, master) error
//	Master(id) / Vassals(id)
//	Detach(id) error
//
//	// Roads
//	AddRoad(a, b) error / RemoveRoad(a, b) error
//	RoadsFrom(id) / RoadLength(a, b) / Roads() / RoadCount()
//	ClearRoads() / ReplaceRoads(roads) error
//
//	// Handle surface for traversal packages
//	Handle(id) / ID(h) / Cap() / Adjacent(h) / CoordOf(h) / MasterOf(h) / VassalsOf(h) / TaxOf(h)
//
// Errors:
//
//	ErrEmptyTownID   – zero-length town ID
//	ErrBadCoord      – coordinate beyond ±geo.MaxCoord, or geo.NoCoord
//	ErrTownNotFound  – missing town
//	ErrTownExists    – duplicate registration
//	ErrEmptyRealm    – min/max query on an empty realm
//	ErrHasMaster     – vassal already has a master
//	ErrSelfVassal    – town attached to itself
//	ErrVassalCycle   – attachment would close a loop in the forest
//	ErrSelfRoad      – road from a town to itself
//	ErrRoadExists    – duplicate road
//	ErrRoadNotFound  – missing road
//
// Concurrency: one coarse sync.RWMutex guards the whole Realm. Mutations take
// the write lock, queries the read lock. Algorithm packages read through
// several such calls, so a query racing with mutations sees no single
// snapshot; it stays memory safe but its answer may mix both states. Callers
// needing a consistent answer must not mutate the realm during a query.
package core
