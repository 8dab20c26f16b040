package vassal

import (
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/traversal"
)

// frame is one pending stack entry of a subtree walk.
type frame struct {
	h     core.Handle
	depth int
}

// LongestPath returns the longest chain id, vassal, vassal-of-vassal, ...
// that descends from id. A town without vassals yields []TownID{id}.
//
// Among chains of equal length the first one met in pre-order, exploring
// vassals in attachment order, is returned.
//
// On a missing town it returns []TownID{core.NoTownID} with core.ErrTownNotFound.
//
// Steps:
//  1. Resolve id and push it at depth 0.
//  2. Pop a frame; record it as the deepest town if its depth is strictly
//     greater than the best so far.
//  3. Push its vassals in reverse so the first vassal is popped first.
//  4. Rebuild the chain from the deepest town through predecessor links.
func LongestPath(r *core.Realm, id core.TownID) ([]core.TownID, error) {
	root, err := resolve(r, id)
	if err != nil {
		return []core.TownID{core.NoTownID}, err
	}

	tc := traversal.New(r.Cap())
	best, bestDepth := root, 0
	stack := []frame{{h: root}}
	tc.Visit(root)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > bestDepth {
			best, bestDepth = f.h, f.depth
		}

		vs := r.VassalsOf(f.h)
		for i := len(vs) - 1; i >= 0; i-- {
			v := vs[i]
			if tc.Visited(v) {
				return nil, fmt.Errorf("%w: at %q", ErrTreeCycle, r.ID(v))
			}
			tc.Visit(v)
			tc.SetPrev(v, f.h)
			stack = append(stack, frame{h: v, depth: f.depth + 1})
		}
	}

	return traversal.IDs(r, tc.PathTo(best)), nil
}
