// File: methods_towns.go
// Role: Town registry lifecycle and lookups.
//
// Determinism:
//   - Towns() and FindTowns() return IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, lookups under mu read lock.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/realm/geo"
)

// AddTown registers a new town.
//
// Steps:
//  1. Validate non-empty id (ErrEmptyTownID) and a coordinate within
//     ±geo.MaxCoord (ErrBadCoord).
//  2. Under write lock, reject a duplicate id (ErrTownExists).
//  3. Allocate an arena slot, reusing a freed one when available.
//  4. Precompute the floored origin distance used by ordering queries.
//
// Complexity: O(1) amortized.
func (r *Realm) AddTown(id TownID, name string, coord geo.Coord, tax int) error {
	if id == "" {
		return ErrEmptyTownID
	}
	if !coord.InRange() {
		return fmt.Errorf("%w: %q at %s", ErrBadCoord, id, coord)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; exists {
		return fmt.Errorf("%w: %q", ErrTownExists, id)
	}

	t := &town{
		id:         id,
		name:       name,
		coord:      coord,
		originDist: geo.FromOrigin(coord),
		tax:        tax,
		master:     NoHandle,
	}

	var h Handle
	if n := len(r.free); n > 0 {
		h = r.free[n-1]
		r.free = r.free[:n-1]
		r.towns[h] = t
	} else {
		h = Handle(len(r.towns))
		r.towns = append(r.towns, t)
	}
	r.index[id] = h

	r.log.Debug("town added", "town", id, "handle", int(h), "coord", coord.String(), "tax", tax)

	return nil
}

// Name returns the display name of id, or NoName with ErrTownNotFound.
func (r *Realm) Name(id TownID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return NoName, err
	}

	return t.name, nil
}

// Coord returns the coordinates of id, or geo.NoCoord with ErrTownNotFound.
func (r *Realm) Coord(id TownID) (geo.Coord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return geo.NoCoord, err
	}

	return t.coord, nil
}

// Tax returns the own tax rate of id, or NoValue with ErrTownNotFound.
func (r *Realm) Tax(id TownID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return NoValue, err
	}

	return t.tax, nil
}

// Town returns a snapshot of id including its master and vassals.
func (r *Realm) Town(id TownID) (TownInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return TownInfo{ID: NoTownID, Name: NoName, Coord: geo.NoCoord, Tax: NoValue, Master: NoTownID}, err
	}

	info := TownInfo{
		ID:      t.id,
		Name:    t.name,
		Coord:   t.coord,
		Tax:     t.tax,
		Master:  NoTownID,
		Vassals: r.idsOf(t.vassals),
	}
	if t.master != NoHandle {
		info.Master = r.towns[t.master].id
	}

	return info, nil
}

// Rename changes the display name of id.
func (r *Realm) Rename(id TownID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookup(id)
	if err != nil {
		return err
	}
	r.log.Debug("town renamed", "town", id, "from", t.name, "to", name)
	t.name = name

	return nil
}

// TownCount returns the number of registered towns.
func (r *Realm) TownCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.index)
}

// Towns returns every town ID sorted ascending.
func (r *Realm) Towns() []TownID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TownID, 0, len(r.index))
	for id := range r.index {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// FindTowns returns the IDs of every town named name, sorted ascending.
// The result is empty (never nil) when nothing matches.
func (r *Realm) FindTowns(name string) []TownID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TownID, 0)
	for _, t := range r.towns {
		if t != nil && t.name == name {
			ids = append(ids, t.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// RemoveTown erases id from the realm.
//
// Steps:
//  1. Validate presence (ErrTownNotFound).
//  2. Detach id from the vassal forest: its vassals move to its master,
//     or become masterless if id had none.
//  3. Drop every road touching id from both endpoints and from the road list.
//  4. Free the arena slot.
//
// Complexity: O(deg(id)·deg(n) + R + V_m) where R is the road count and V_m
// the size of the master's vassal list.
func (r *Realm) RemoveTown(id TownID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTownNotFound, id)
	}

	r.detachLocked(h)
	r.removeTownRoadsLocked(h)

	r.towns[h] = nil
	r.free = append(r.free, h)
	delete(r.index, id)

	r.log.Debug("town removed", "town", id)

	return nil
}

// Clear drops every town and road.
func (r *Realm) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.towns = nil
	r.free = nil
	r.index = make(map[TownID]Handle)
	r.roads = nil

	r.log.Debug("realm cleared")
}

// lookup resolves id to its record. Caller must hold mu.
func (r *Realm) lookup(id TownID) (*town, error) {
	h, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTownNotFound, id)
	}

	return r.towns[h], nil
}

// idsOf maps handles to IDs, preserving order. Caller must hold mu.
func (r *Realm) idsOf(hs []Handle) []TownID {
	ids := make([]TownID, len(hs))
	for i, h := range hs {
		ids[i] = r.towns[h].id
	}

	return ids
}
