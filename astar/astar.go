package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/traversal"
)

// ShortestRoute returns the route from one town to another with the minimum
// total road length, and that length.
//
// Returns an empty route and 0 when from == to, an empty route and
// geo.NoDistance when to is unreachable, and []TownID{core.NoTownID} with
// geo.NoDistance and core.ErrTownNotFound when either endpoint is absent.
//
// Steps:
//  1. Validate the realm, options and both endpoints.
//  2. Reset a fresh traversal context; push from with g = 0.
//  3. Pop the entry with the lowest estimate g + floored distance to the goal.
//     Skip it if stale or if g cannot beat the best goal distance found so far.
//  4. Relax its roads: a strictly shorter route updates distance, estimate
//     and predecessor and pushes a new entry.
//  5. When the frontier is drained, rebuild the route from the goal.
//
// Flooring can make the heuristic overestimate by less than one per road, so
// the search does not stop at the first goal pop; the best-goal bound prunes
// the remaining frontier instead.
//
// Complexity: O((V + E) log V) in practice; worst case re-expands towns.
func ShortestRoute(r *core.Realm, from, to core.TownID, opts ...Option) ([]core.TownID, geo.Distance, error) {
	cfg, err := configure(r, opts)
	if err != nil {
		return nil, geo.NoDistance, err
	}
	fh, th, err := endpoints(r, from, to)
	if err != nil {
		return []core.TownID{core.NoTownID}, geo.NoDistance, err
	}
	if fh == th {
		return []core.TownID{}, 0, nil
	}

	goal := r.CoordOf(th)
	run := newRunner(r, cfg, th, func(h core.Handle) geo.Distance {
		return geo.Between(r.CoordOf(h), goal)
	})
	run.process(fh)

	if !run.tc.Visited(th) {
		return []core.TownID{}, geo.NoDistance, nil
	}

	return traversal.IDs(r, run.tc.PathTo(th)), run.tc.Dist(th), nil
}

// Dijkstra computes the shortest road distance from one town to every town
// reachable from it. It is ShortestRoute with a zero heuristic and no goal.
func Dijkstra(r *core.Realm, from core.TownID, opts ...Option) (map[core.TownID]geo.Distance, error) {
	cfg, err := configure(r, opts)
	if err != nil {
		return nil, err
	}
	fh, ok := r.Handle(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrTownNotFound, from)
	}

	run := newRunner(r, cfg, core.NoHandle, func(core.Handle) geo.Distance { return 0 })
	run.process(fh)

	dist := make(map[core.TownID]geo.Distance)
	for h := core.Handle(0); int(h) < run.tc.Len(); h++ {
		if run.tc.Visited(h) {
			dist[r.ID(h)] = run.tc.Dist(h)
		}
	}

	return dist, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	realm     *core.Realm
	options   Options
	goal      core.Handle // NoHandle: settle every reachable town
	heuristic func(core.Handle) geo.Distance
	tc        *traversal.Context
	pq        nodePQ
	seq       int
}

func newRunner(r *core.Realm, cfg Options, goal core.Handle, hf func(core.Handle) geo.Distance) *runner {
	return &runner{
		realm:     r,
		options:   cfg,
		goal:      goal,
		heuristic: hf,
		tc:        traversal.New(r.Cap()),
	}
}

// bound is the length a route must stay strictly below to be worth exploring.
func (r *runner) bound() geo.Distance {
	if r.goal != core.NoHandle && r.tc.Visited(r.goal) {
		return r.tc.Dist(r.goal)
	}
	if r.options.MaxDistance == traversal.Infinity {
		return traversal.Infinity
	}

	return r.options.MaxDistance + 1
}

// process seeds the frontier with src and drains it.
// A town is marked visited once it has a finite tentative distance.
func (r *runner) process(src core.Handle) {
	r.tc.Visit(src)
	r.tc.SetDist(src, 0)
	r.push(src, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.g != r.tc.Dist(item.h) {
			continue // stale: a shorter route was pushed later
		}
		if item.h == r.goal {
			continue
		}
		if item.g >= r.bound() {
			continue
		}
		r.relax(item)
	}
}

// relax tries to improve every neighbour of item.h.
func (r *runner) relax(item *nodeItem) {
	for _, l := range r.realm.Adjacent(item.h) {
		nd := item.g + l.Length
		if nd >= r.bound() || nd >= r.tc.Dist(l.To) {
			continue
		}
		r.tc.Visit(l.To)
		r.tc.SetDist(l.To, nd)
		r.tc.SetPrev(l.To, item.h)
		r.push(l.To, nd)
	}
}

func (r *runner) push(h core.Handle, g geo.Distance) {
	f := g + r.heuristic(h)
	r.seq++
	heap.Push(&r.pq, &nodeItem{h: h, g: g, f: f, seq: r.seq})
}

func configure(r *core.Realm, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if r == nil {
		return cfg, ErrRealmNil
	}

	return cfg, nil
}

func endpoints(r *core.Realm, from, to core.TownID) (core.Handle, core.Handle, error) {
	fh, ok := r.Handle(from)
	if !ok {
		return core.NoHandle, core.NoHandle, fmt.Errorf("%w: %q", core.ErrTownNotFound, from)
	}
	th, ok := r.Handle(to)
	if !ok {
		return core.NoHandle, core.NoHandle, fmt.Errorf("%w: %q", core.ErrTownNotFound, to)
	}

	return fh, th, nil
}
