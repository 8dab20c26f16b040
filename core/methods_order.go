// File: methods_order.go
// Role: Lexical and geometric ordering queries over the registry.
//
// Every distance comparison uses the floored geo.Between value, so two towns
// whose real distances differ but floor to the same Distance compare equal
// and fall back to the ID tie-break.
package core

import (
	"sort"

	"github.com/katalvlaran/realm/geo"
)

// ranked pairs a town with the key it is being ordered by.
type ranked struct {
	id   TownID
	name string
	dist geo.Distance
}

// TownsAlphabetically returns every town ID ordered by name, ties by ID.
// Complexity: O(V log V).
func (r *Realm) TownsAlphabetically() []TownID {
	r.mu.RLock()
	items := r.rankLocked(func(t *town) geo.Distance { return 0 })
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].name != items[j].name {
			return items[i].name < items[j].name
		}

		return items[i].id < items[j].id
	})

	return idsOfRanked(items)
}

// TownsByDistance returns every town ID ordered by floored distance from the
// origin, ties by ID.
// Complexity: O(V log V); origin distances are precomputed at registration.
func (r *Realm) TownsByDistance() []TownID {
	r.mu.RLock()
	items := r.rankLocked(func(t *town) geo.Distance { return t.originDist })
	r.mu.RUnlock()

	sortByDistance(items)

	return idsOfRanked(items)
}

// TownsNearest returns every town ID ordered by floored distance from c,
// ties by ID.
// Complexity: O(V log V).
func (r *Realm) TownsNearest(c geo.Coord) []TownID {
	r.mu.RLock()
	items := r.rankLocked(func(t *town) geo.Distance { return geo.Between(t.coord, c) })
	r.mu.RUnlock()

	sortByDistance(items)

	return idsOfRanked(items)
}

// MinDistance returns the town closest to the origin.
// Ties resolve to the smaller ID. An empty realm yields NoTownID and ErrEmptyRealm.
// Complexity: O(V).
func (r *Realm) MinDistance() (TownID, error) {
	return r.extremeDistance(func(d, best geo.Distance) bool { return d < best })
}

// MaxDistance returns the town farthest from the origin.
// Ties resolve to the smaller ID. An empty realm yields NoTownID and ErrEmptyRealm.
// Complexity: O(V).
func (r *Realm) MaxDistance() (TownID, error) {
	return r.extremeDistance(func(d, best geo.Distance) bool { return d > best })
}

// extremeDistance performs a single linear scan keeping the best town under
// better, breaking ties on the smaller ID.
func (r *Realm) extremeDistance(better func(d, best geo.Distance) bool) (TownID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *town
	for _, t := range r.towns {
		if t == nil {
			continue
		}
		if best == nil || better(t.originDist, best.originDist) ||
			(t.originDist == best.originDist && t.id < best.id) {
			best = t
		}
	}
	if best == nil {
		return NoTownID, ErrEmptyRealm
	}

	return best.id, nil
}

// rankLocked snapshots every live town with its key. Caller must hold mu.
func (r *Realm) rankLocked(key func(t *town) geo.Distance) []ranked {
	items := make([]ranked, 0, len(r.index))
	for _, t := range r.towns {
		if t == nil {
			continue
		}
		items = append(items, ranked{id: t.id, name: t.name, dist: key(t)})
	}

	return items
}

func sortByDistance(items []ranked) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].dist != items[j].dist {
			return items[i].dist < items[j].dist
		}

		return items[i].id < items[j].id
	})
}

func idsOfRanked(items []ranked) []TownID {
	ids := make([]TownID, len(items))
	for i, it := range items {
		ids[i] = it.id
	}

	return ids
}
