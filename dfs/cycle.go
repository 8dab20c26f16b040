package dfs

import (
	"fmt"

	"github.com/katalvlaran/realm/core"
)

// FindCycle returns a cycle of roads reachable from start, or an empty slice
// when the component of start is a tree.
//
// The result is the DFS tree path from start down to the first town that has
// a road to an already visited town other than its own predecessor, followed
// by that visited town. Roads are explored in insertion order. Returning
// along the road just arrived on is never a cycle.
//
// Returns []TownID{core.NoTownID} with core.ErrTownNotFound when start is absent.
//
// Steps:
//  1. Push start; its frame lists its road ends.
//  2. Take the next road end of the top frame; skip it if it leads to the
//     top town's predecessor.
//  3. A visited target closes a cycle: emit the stack path plus the target.
//  4. Otherwise push the target; pop frames whose roads are exhausted.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(r *core.Realm, start core.TownID, opts ...Option) ([]core.TownID, error) {
	s, err := newSearcher(r, opts)
	if err != nil {
		return nil, err
	}
	sh, ok := r.Handle(start)
	if !ok {
		return []core.TownID{core.NoTownID}, fmt.Errorf("%w: %q", core.ErrTownNotFound, start)
	}

	var witness core.Handle
	s.push(sh, core.NoHandle)
	found, err := s.run(func(top core.Handle, l core.Link) (bool, bool) {
		if l.To == s.tc.Prev(top) {
			return false, false
		}
		if s.tc.Visited(l.To) {
			witness = l.To

			return false, true
		}

		return true, false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.TownID{}, nil
	}

	return s.path(witness), nil
}

// HasCycle reports whether any component of the road network contains a
// cycle, i.e. whether the network is not a forest.
func HasCycle(r *core.Realm, opts ...Option) (bool, error) {
	s, err := newSearcher(r, opts)
	if err != nil {
		return false, err
	}
	for h := core.Handle(0); int(h) < s.tc.Len(); h++ {
		if r.ID(h) == core.NoTownID {
			continue
		}
		if s.tc.Visited(h) {
			continue
		}
		s.push(h, core.NoHandle)
		found, err := s.run(func(top core.Handle, l core.Link) (bool, bool) {
			if l.To == s.tc.Prev(top) {
				return false, false
			}

			return !s.tc.Visited(l.To), s.tc.Visited(l.To)
		})
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
