package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/traversal"
)

// frame is one level of the explicit DFS stack: a town and the index of the
// next road end to examine. The stack of frames is the current tree path.
type frame struct {
	h     core.Handle
	links []core.Link
	next  int
}

// searcher holds the mutable state of one depth-first search.
type searcher struct {
	realm *core.Realm
	ctx   context.Context
	tc    *traversal.Context
	stack []frame
}

// visitFunc inspects the road end l leaving the top frame. It returns
// descend=true to push l.To, or done=true to stop the search.
type visitFunc func(top core.Handle, l core.Link) (descend, done bool)

func newSearcher(r *core.Realm, opts []Option) (*searcher, error) {
	if r == nil {
		return nil, ErrRealmNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &searcher{realm: r, ctx: o.Ctx, tc: traversal.New(r.Cap())}, nil
}

// push marks h visited under parent and opens its frame.
func (s *searcher) push(h, parent core.Handle) {
	s.tc.Visit(h)
	s.tc.SetPrev(h, parent)
	s.stack = append(s.stack, frame{h: h, links: s.realm.Adjacent(h)})
}

// run drives the stack until it empties or fn reports done.
// It returns true when fn stopped the search.
func (s *searcher) run(fn visitFunc) (bool, error) {
	for len(s.stack) > 0 {
		select {
		case <-s.ctx.Done():
			return false, s.ctx.Err()
		default:
		}

		top := &s.stack[len(s.stack)-1]
		if top.next == len(top.links) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		l := top.links[top.next]
		top.next++

		descend, done := fn(top.h, l)
		if done {
			return true, nil
		}
		if descend {
			s.push(l.To, top.h)
		}
	}

	return false, nil
}

// path returns the IDs of the current tree path followed by extra.
func (s *searcher) path(extra core.Handle) []core.TownID {
	ids := make([]core.TownID, 0, len(s.stack)+1)
	for _, f := range s.stack {
		ids = append(ids, s.realm.ID(f.h))
	}

	return append(ids, s.realm.ID(extra))
}

// AnyRoute returns the first route from one town to another found by
// depth-first search, exploring roads in insertion order.
//
// Returns an empty route when from == to or when to is unreachable, and
// []TownID{core.NoTownID} with core.ErrTownNotFound when either endpoint is
// absent. The route is simple but not necessarily short.
//
// Complexity: O(V + E) time, O(V) memory.
func AnyRoute(r *core.Realm, from, to core.TownID, opts ...Option) ([]core.TownID, error) {
	s, err := newSearcher(r, opts)
	if err != nil {
		return nil, err
	}
	fh, th, err := endpoints(r, from, to)
	if err != nil {
		return []core.TownID{core.NoTownID}, err
	}
	if fh == th {
		return []core.TownID{}, nil
	}

	s.push(fh, core.NoHandle)
	found, err := s.run(func(_ core.Handle, l core.Link) (bool, bool) {
		if l.To == th {
			return false, true
		}

		return !s.tc.Visited(l.To), false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.TownID{}, nil
	}

	return s.path(th), nil
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
