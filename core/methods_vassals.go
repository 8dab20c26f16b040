// File: methods_vassals.go
// Role: Mutations and direct lookups on the master/vassal forest.
//
// Determinism:
//   - Vassal lists keep insertion order; re-parented vassals are appended to
//     the new master's list in their previous order.
package core

import "fmt"

// AddVassalship makes vassal pay tax to master.
//
// Steps:
//  1. Resolve vassal (ErrTownNotFound) and reject it if it already has a master (ErrHasMaster).
//  2. Resolve master (ErrTownNotFound); reject vassal == master (ErrSelfVassal).
//  3. Walk master's ancestors; if vassal is among them the link would close a
//     loop (ErrVassalCycle).
//  4. Set the back-reference and append vassal to master's vassal list.
//
// Complexity: O(depth(master)).
func (r *Realm) AddVassalship(vassal, master TownID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vh, ok := r.index[vassal]
	if !ok {
		return fmt.Errorf("%w: vassal %q", ErrTownNotFound, vassal)
	}
	v := r.towns[vh]
	if v.master != NoHandle {
		return fmt.Errorf("%w: %q pays %q", ErrHasMaster, vassal, r.towns[v.master].id)
	}
	mh, ok := r.index[master]
	if !ok {
		return fmt.Errorf("%w: master %q", ErrTownNotFound, master)
	}
	if vh == mh {
		return fmt.Errorf("%w: %q", ErrSelfVassal, vassal)
	}
	// A masterless vassal can still be the root of master's own subtree.
	for cur, steps := mh, 0; cur != NoHandle && steps <= len(r.index); cur, steps = r.towns[cur].master, steps+1 {
		if cur == vh {
			return fmt.Errorf("%w: %q already rules %q", ErrVassalCycle, vassal, master)
		}
	}

	v.master = mh
	r.towns[mh].vassals = append(r.towns[mh].vassals, vh)

	r.log.Debug("vassalship added", "vassal", vassal, "master", master)

	return nil
}

// Master returns the master of id, or NoTownID when id is masterless.
func (r *Realm) Master(id TownID) (TownID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return NoTownID, err
	}
	if t.master == NoHandle {
		return NoTownID, nil
	}

	return r.towns[t.master].id, nil
}

// Vassals returns the direct vassals of id in insertion order.
func (r *Realm) Vassals(id TownID) ([]TownID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	return r.idsOf(t.vassals), nil
}

// Detach removes id from the forest without unregistering it.
//
// If id has a master M, every vassal of id is re-parented to M and appended to
// M's vassal list, and id leaves M's list. If id has no master its vassals
// become masterless roots. Afterwards id has neither master nor vassals.
//
// Complexity: O(|vassals(id)| + |vassals(M)|).
func (r *Realm) Detach(id TownID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTownNotFound, id)
	}
	r.detachLocked(h)

	return nil
}

// detachLocked implements Detach. Caller must hold the write lock.
func (r *Realm) detachLocked(h Handle) {
	t := r.towns[h]
	mh := t.master

	if mh != NoHandle {
		m := r.towns[mh]
		for _, vh := range t.vassals {
			r.towns[vh].master = mh
			m.vassals = append(m.vassals, vh)
		}
		m.vassals = removeHandle(m.vassals, h)
	} else {
		for _, vh := range t.vassals {
			r.towns[vh].master = NoHandle
		}
	}

	if mh != NoHandle || len(t.vassals) > 0 {
		r.log.Debug("town detached", "town", t.id, "vassals", len(t.vassals), "reparented", mh != NoHandle)
	}
	t.master = NoHandle
	t.vassals = nil
}

// removeHandle deletes the first occurrence of h, keeping order.
func removeHandle(hs []Handle, h Handle) []Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}

	return hs
}
