// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Realm, town record, road and handle types; sentinel errors; options; New.

package core

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/realm/geo"
)

// TownID uniquely identifies a town within a Realm.
type TownID string

// NoTownID is returned where a town ID was not found.
const NoTownID TownID = "----------"

// NoName is returned where a town name was not found.
const NoName = "!!NO_NAME!!"

// NoValue is returned where an integer value (tax) was not found.
const NoValue = geo.NoValue

// Handle is the stable arena index of a live town.
// A handle stays valid until its town is removed.
type Handle int

// NoHandle marks an absent handle (a town without a master, a failed lookup).
const NoHandle Handle = -1

// Sentinel errors for realm operations.
var (
	// ErrEmptyTownID indicates a zero-length town ID.
	ErrEmptyTownID = errors.New("core: town ID is empty")

	// ErrBadCoord indicates a coordinate outside ±geo.MaxCoord, or geo.NoCoord.
	ErrBadCoord = errors.New("core: coordinate out of range")

	// ErrTownNotFound indicates an operation referenced a town that is not registered.
	ErrTownNotFound = errors.New("core: town not found")

	// ErrTownExists indicates a registration with an ID already in use.
	ErrTownExists = errors.New("core: town already exists")

	// ErrEmptyRealm indicates a query that needs at least one town.
	ErrEmptyRealm = errors.New("core: realm has no towns")

	// ErrHasMaster indicates the would-be vassal already pays tax to a master.
	ErrHasMaster = errors.New("core: town already has a master")

	// ErrSelfVassal indicates an attempt to make a town its own vassal.
	ErrSelfVassal = errors.New("core: town cannot be its own vassal")

	// ErrVassalCycle indicates the master already descends from the vassal.
	ErrVassalCycle = errors.New("core: vassalship would form a cycle")

	// ErrSelfRoad indicates a road whose endpoints are the same town.
	ErrSelfRoad = errors.New("core: road endpoints must differ")

	// ErrRoadExists indicates a second road between the same pair of towns.
	ErrRoadExists = errors.New("core: road already exists")

	// ErrRoadNotFound indicates an operation referenced a road that does not exist.
	ErrRoadNotFound = errors.New("core: road not found")
)

// Link is one end of a road as seen from a town: the neighbour and the road length.
type Link struct {
	To     Handle
	Length geo.Distance
}

// Road is an undirected road in canonical form (From < To).
type Road struct {
	From   TownID
	To     TownID
	Length geo.Distance
}

// TownInfo is a read-only snapshot of one town.
type TownInfo struct {
	ID      TownID
	Name    string
	Coord   geo.Coord
	Tax     int
	Master  TownID // NoTownID when the town has no master
	Vassals []TownID
}

// town is the arena record. Handles, not pointers, link towns together.
type town struct {
	id         TownID
	name       string
	coord      geo.Coord
	originDist geo.Distance // precomputed geo.FromOrigin(coord)
	tax        int

	master  Handle   // NoHandle when masterless
	vassals []Handle // insertion order
	links   []Link   // road ends, insertion order, unique by To
}

// Option configures a Realm at construction time.
type Option func(r *Realm)

// WithLogger routes mutation logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Realm) {
		if l != nil {
			r.log = l
		}
	}
}

// Realm owns every town, the vassalship forest and the road network.
type Realm struct {
	mu  sync.RWMutex
	log *slog.Logger

	towns []*town // arena; nil slot = free
	free  []Handle
	index map[TownID]Handle

	// roads is the flat enumeration list, one canonical entry per road.
	roads []Road
}

// New creates an empty Realm.
// By default logs are discarded.
func New(opts ...Option) *Realm {
	r := &Realm{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		index: make(map[TownID]Handle),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// canonical orders a pair so the smaller ID comes first.
func canonical(a, b TownID) (TownID, TownID) {
	if b < a {
		return b, a
	}

	return a, b
}
