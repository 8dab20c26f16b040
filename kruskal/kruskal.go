// Package kruskal reduces the road network of a core.Realm to a minimum
// spanning forest.
package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// Forest computes a minimum spanning forest of the current road network
// without changing it. It returns the kept roads in the order they were
// accepted and their total length.
//
// Steps:
//  1. Validate the realm; an empty network yields (nil, 0, nil).
//  2. Sort roads by ascending length (stable, so equal lengths keep
//     insertion order).
//  3. Initialize a UnionFind over the arena.
//  4. Keep a road iff its endpoints are in different sets, then merge them.
//  5. Stop once TownCount()-1 roads are kept.
//
// Complexity: O(R log R + R·α(V)). Memory: O(R + V).
func Forest(r *core.Realm) ([]core.Road, geo.Distance, error) {
	if r == nil {
		return nil, 0, ErrRealmNil
	}
	roads := r.Roads()
	if len(roads) == 0 {
		return nil, 0, nil
	}

	sort.SliceStable(roads, func(i, j int) bool {
		return roads[i].Length < roads[j].Length
	})

	var (
		uf    = NewUnionFind(r.Cap())
		limit = r.TownCount() - 1
		kept  []core.Road
		total geo.Distance
	)
	for _, rd := range roads {
		a, okA := r.Handle(rd.From)
		b, okB := r.Handle(rd.To)
		if !okA || !okB {
			return nil, 0, fmt.Errorf("%w: road %q-%q", core.ErrTownNotFound, rd.From, rd.To)
		}
		if !uf.Union(a, b) {
			continue
		}
		kept = append(kept, rd)
		total += rd.Length
		if len(kept) == limit {
			break
		}
	}

	return kept, total, nil
}

// TrimRoads replaces the road network with a minimum spanning forest and
// returns the total length of the roads kept, 0 when there were no roads.
//
// A disconnected network yields a forest: one tree per connected component,
// and the total covers only the kept roads.
func TrimRoads(r *core.Realm) (geo.Distance, error) {
	kept, total, err := Forest(r)
	if err != nil {
		return 0, err
	}
	if r.RoadCount() == 0 {
		return 0, nil
	}
	if err = r.ReplaceRoads(kept); err != nil {
		return 0, fmt.Errorf("kruskal: replace roads: %w", err)
	}

	return total, nil
}
