// Package bfs provides breadth-first search over the road network of a
// core.Realm: fewest-roads routes and full reachability walks.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/traversal"
)

// queueItem pairs a town handle with its BFS depth.
type queueItem struct {
	h     core.Handle
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	realm  *core.Realm
	opts   Options
	ctx    context.Context
	tc     *traversal.Context
	queue  []queueItem
	target core.Handle // NoHandle for a full walk
	res    *Result     // nil unless recording a full walk
}

// FewestRoads returns a route from one town to another that uses the fewest
// roads, both endpoints included.
//
// Returns an empty route when from == to or when to is unreachable, and
// []TownID{core.NoTownID} with core.ErrTownNotFound when either endpoint is
// absent.
//
// Steps:
//  1. Validate the realm, options and both endpoints.
//  2. Reset a fresh traversal context sized to the arena.
//  3. Expand the frontier in road insertion order, recording predecessors.
//  4. Stop as soon as the target is discovered and rebuild the route.
//
// Complexity: O(V + E) time, O(V) memory.
func FewestRoads(r *core.Realm, from, to core.TownID, opts ...Option) ([]core.TownID, error) {
	w, err := newWalker(r, from, opts)
	if err != nil {
		return notFound(err)
	}
	th, ok := r.Handle(to)
	if !ok {
		return notFound(fmt.Errorf("%w: %q", core.ErrTownNotFound, to))
	}
	if from == to {
		return []core.TownID{}, nil
	}

	w.target = th
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.tc.Visited(th) {
		return []core.TownID{}, nil
	}

	return traversal.IDs(r, w.tc.PathTo(th)), nil
}

// Walk visits every town reachable from start and reports the visit order
// and the road count to each town.
func Walk(r *core.Realm, start core.TownID, opts ...Option) (*Result, error) {
	w, err := newWalker(r, start, opts)
	if err != nil {
		return nil, err
	}
	w.res = &Result{Depth: make(map[core.TownID]int)}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates the inputs and seeds the queue with start.
func newWalker(r *core.Realm, start core.TownID, opts []Option) (*walker, error) {
	if r == nil {
		return nil, ErrRealmNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	sh, ok := r.Handle(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrTownNotFound, start)
	}

	w := &walker{
		realm:  r,
		opts:   o,
		ctx:    o.Ctx,
		tc:     traversal.New(r.Cap()),
		target: core.NoHandle,
	}
	w.enqueue(sh, 0, core.NoHandle)

	return w, nil
}

// enqueue marks h visited, records its predecessor and queues it.
func (w *walker) enqueue(h core.Handle, d int, parent core.Handle) {
	w.tc.Visit(h)
	w.tc.SetPrev(h, parent)
	w.queue = append(w.queue, queueItem{h: h, depth: d})
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.enqueueNeighbors(item) {
			return nil
		}
	}

	return nil
}

// visit records the town and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.realm.ID(item.h)
	if w.res != nil {
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = item.depth
	}
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// enqueueNeighbors queues every unseen neighbour within MaxDepth and reports
// whether the target was among them.
func (w *walker) enqueueNeighbors(item queueItem) bool {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return false
	}
	for _, l := range w.realm.Adjacent(item.h) {
		if w.tc.Visited(l.To) {
			continue
		}
		w.enqueue(l.To, next, item.h)
		if l.To == w.target {
			return true
		}
	}

	return false
}

// notFound pairs a lookup failure with the not-found route sentinel.
func notFound(err error) ([]core.TownID, error) {
	if errors.Is(err, core.ErrTownNotFound) {
		return []core.TownID{core.NoTownID}, err
	}

	return nil, err
}
