package vassal

import (
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/traversal"
)

// TaxerPath returns id followed by its master, that master's master, and so
// on up to a masterless town.
//
// On a missing town it returns []TownID{core.NoTownID} with core.ErrTownNotFound.
//
// Steps:
//  1. Resolve id.
//  2. Follow master links, marking each town visited.
//  3. Stop at NoHandle, or fail with ErrTreeCycle on a revisit.
func TaxerPath(r *core.Realm, id core.TownID) ([]core.TownID, error) {
	h, err := resolve(r, id)
	if err != nil {
		return []core.TownID{core.NoTownID}, err
	}

	tc := traversal.New(r.Cap())
	path := []core.TownID{id}
	tc.Visit(h)
	for m := r.MasterOf(h); m != core.NoHandle; m = r.MasterOf(m) {
		if tc.Visited(m) {
			return nil, fmt.Errorf("%w: at %q", ErrTreeCycle, r.ID(m))
		}
		tc.Visit(m)
		path = append(path, r.ID(m))
	}

	return path, nil
}

// resolve validates r and maps id to its handle.
func resolve(r *core.Realm, id core.TownID) (core.Handle, error) {
	if r == nil {
		return core.NoHandle, ErrRealmNil
	}
	h, ok := r.Handle(id)
	if !ok {
		return core.NoHandle, fmt.Errorf("%w: %q", core.ErrTownNotFound, id)
	}

	return h, nil
}
