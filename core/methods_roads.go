// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle and queries: AddRoad/RemoveRoad/RoadsFrom/RoadLength/
//       Roads/RoadCount/ClearRoads/ReplaceRoads, plus the incident-road cleanup
//       used by RemoveTown.
// Determinism:
//   - RoadsFrom() returns neighbours in road insertion order.
//   - Roads() returns the flat list in insertion order, each entry From < To.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"

	"github.com/katalvlaran/realm/geo"
)

// AddRoad connects a and b with a road whose length is the floored distance
// between their coordinates.
//
// Steps:
//  1. Reject a == b (ErrSelfRoad).
//  2. Resolve both endpoints (ErrTownNotFound).
//  3. Reject an existing road between them (ErrRoadExists).
//  4. Insert symmetric adjacency entries and append the canonical pair to the list.
//
// Complexity: O(deg(a)) for the duplicate check.
func (r *Realm) AddRoad(a, b TownID) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfRoad, a)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ah, bh, err := r.endpoints(a, b)
	if err != nil {
		return err
	}
	ta, tb := r.towns[ah], r.towns[bh]
	if linkIndex(ta.links, bh) >= 0 {
		return fmt.Errorf("%w: %q-%q", ErrRoadExists, a, b)
	}

	length := geo.Between(ta.coord, tb.coord)
	ta.links = append(ta.links, Link{To: bh, Length: length})
	tb.links = append(tb.links, Link{To: ah, Length: length})

	from, to := canonical(a, b)
	r.roads = append(r.roads, Road{From: from, To: to, Length: length})

	r.log.Debug("road added", "from", from, "to", to, "length", int(length))

	return nil
}

// RemoveRoad deletes the road between a and b.
//
// Steps:
//  1. Reject a == b (ErrSelfRoad).
//  2. Resolve both endpoints (ErrTownNotFound).
//  3. Reject a missing road (ErrRoadNotFound).
//  4. Drop both adjacency entries and the list entry.
//
// Complexity: O(deg(a) + deg(b) + R).
func (r *Realm) RemoveRoad(a, b TownID) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfRoad, a)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ah, bh, err := r.endpoints(a, b)
	if err != nil {
		return err
	}
	if linkIndex(r.towns[ah].links, bh) < 0 {
		return fmt.Errorf("%w: %q-%q", ErrRoadNotFound, a, b)
	}
	r.unlinkLocked(ah, bh)

	r.log.Debug("road removed", "from", a, "to", b)

	return nil
}

// RoadsFrom returns the towns directly connected to id, in road insertion order.
func (r *Realm) RoadsFrom(id TownID) ([]TownID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	ids := make([]TownID, len(t.links))
	for i, l := range t.links {
		ids[i] = r.towns[l.To].id
	}

	return ids, nil
}

// RoadLength returns the length of the road between a and b.
// Missing towns yield ErrTownNotFound, a missing road ErrRoadNotFound;
// both with geo.NoDistance.
func (r *Realm) RoadLength(a, b TownID) (geo.Distance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ah, bh, err := r.endpoints(a, b)
	if err != nil {
		return geo.NoDistance, err
	}
	i := linkIndex(r.towns[ah].links, bh)
	if i < 0 {
		return geo.NoDistance, fmt.Errorf("%w: %q-%q", ErrRoadNotFound, a, b)
	}

	return r.towns[ah].links[i].Length, nil
}

// Roads returns a copy of the road list in insertion order.
func (r *Realm) Roads() []Road {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Road, len(r.roads))
	copy(out, r.roads)

	return out
}

// RoadCount returns the number of roads.
func (r *Realm) RoadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.roads)
}

// ClearRoads removes every road, leaving towns and the vassal forest intact.
func (r *Realm) ClearRoads() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearRoadsLocked()
	r.log.Debug("roads cleared")
}

// ReplaceRoads discards the whole road network and installs roads instead.
//
// Every entry is validated first (distinct registered endpoints, no duplicate
// pair); on any error the network is left untouched. Lengths are recomputed
// from coordinates; the Length field of the input is ignored.
//
// Complexity: O(V + R_old + R_new).
func (r *Realm) ReplaceRoads(roads []Road) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	type pair struct{ a, b Handle }
	seen := make(map[pair]struct{}, len(roads))
	hs := make([]pair, len(roads))
	for i, rd := range roads {
		if rd.From == rd.To {
			return fmt.Errorf("%w: %q", ErrSelfRoad, rd.From)
		}
		ah, bh, err := r.endpoints(rd.From, rd.To)
		if err != nil {
			return err
		}
		if bh < ah {
			ah, bh = bh, ah
		}
		p := pair{ah, bh}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q-%q", ErrRoadExists, rd.From, rd.To)
		}
		seen[p] = struct{}{}
		hs[i] = p
	}

	r.clearRoadsLocked()
	for _, p := range hs {
		ta, tb := r.towns[p.a], r.towns[p.b]
		length := geo.Between(ta.coord, tb.coord)
		ta.links = append(ta.links, Link{To: p.b, Length: length})
		tb.links = append(tb.links, Link{To: p.a, Length: length})
		from, to := canonical(ta.id, tb.id)
		r.roads = append(r.roads, Road{From: from, To: to, Length: length})
	}

	r.log.Debug("road network replaced", "roads", len(r.roads))

	return nil
}

// removeTownRoadsLocked drops every road touching h. Caller must hold the write lock.
func (r *Realm) removeTownRoadsLocked(h Handle) {
	t := r.towns[h]
	for len(t.links) > 0 {
		r.unlinkLocked(h, t.links[0].To)
	}
}

// unlinkLocked removes the road a–b from both adjacency lists and the road list.
// The road must exist. Caller must hold the write lock.
func (r *Realm) unlinkLocked(ah, bh Handle) {
	ta, tb := r.towns[ah], r.towns[bh]
	ta.links = removeLink(ta.links, bh)
	tb.links = removeLink(tb.links, ah)

	from, to := canonical(ta.id, tb.id)
	for i, rd := range r.roads {
		if rd.From == from && rd.To == to {
			r.roads = append(r.roads[:i], r.roads[i+1:]...)
			break
		}
	}
}

func (r *Realm) clearRoadsLocked() {
	for _, t := range r.towns {
		if t != nil {
			t.links = nil
		}
	}
	r.roads = nil
}

// endpoints resolves both road endpoints. Caller must hold mu.
func (r *Realm) endpoints(a, b TownID) (Handle, Handle, error) {
	ah, ok := r.index[a]
	if !ok {
		return NoHandle, NoHandle, fmt.Errorf("%w: %q", ErrTownNotFound, a)
	}
	bh, ok := r.index[b]
	if !ok {
		return NoHandle, NoHandle, fmt.Errorf("%w: %q", ErrTownNotFound, b)
	}

	return ah, bh, nil
}

func linkIndex(links []Link, to Handle) int {
	for i, l := range links {
		if l.To == to {
			return i
		}
	}

	return -1
}

func removeLink(links []Link, to Handle) []Link {
	if i := linkIndex(links, to); i >= 0 {
		return append(links[:i], links[i+1:]...)
	}

	return links
}
