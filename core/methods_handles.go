// File: methods_handles.go
// Role: Handle-level read surface used by the traversal packages
//       (vassal, bfs, dfs, astar, kruskal).
//
// Returned slices are copies; callers may keep them across later mutations.
// A handle obtained before a RemoveTown of the same town must not be reused.
package core

import "github.com/katalvlaran/realm/geo"

// Handle resolves id to its arena handle.
func (r *Realm) Handle(id TownID) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.index[id]
	if !ok {
		return NoHandle, false
	}

	return h, true
}

// ID returns the town ID behind h, or NoTownID for a free or out-of-range handle.
func (r *Realm) ID(h Handle) TownID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return NoTownID
	}

	return t.id
}

// Cap returns the arena size. Every live handle is in [0, Cap()).
// Traversal contexts are sized with it.
func (r *Realm) Cap() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.towns)
}

// Adjacent returns the road ends of h in insertion order.
func (r *Realm) Adjacent(h Handle) []Link {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return nil
	}
	out := make([]Link, len(t.links))
	copy(out, t.links)

	return out
}

// CoordOf returns the coordinates of h, or geo.NoCoord.
func (r *Realm) CoordOf(h Handle) geo.Coord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return geo.NoCoord
	}

	return t.coord
}

// MasterOf returns the master handle of h, or NoHandle.
func (r *Realm) MasterOf(h Handle) Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return NoHandle
	}

	return t.master
}

// VassalsOf returns the vassal handles of h in insertion order.
func (r *Realm) VassalsOf(h Handle) []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return nil
	}
	out := make([]Handle, len(t.vassals))
	copy(out, t.vassals)

	return out
}

// TaxOf returns the own tax rate of h, or NoValue.
func (r *Realm) TaxOf(h Handle) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.at(h)
	if t == nil {
		return NoValue
	}

	return t.tax
}

// at returns the live record behind h or nil. Caller must hold mu.
func (r *Realm) at(h Handle) *town {
	if h < 0 || int(h) >= len(r.towns) {
		return nil
	}

	return r.towns[h]
}
