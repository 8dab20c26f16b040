package vassal

import (
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/traversal"
)

// NetTax returns what id keeps: its own tax plus a tenth of each direct
// vassal's gross income, minus a tenth of that total if id has a master.
//
// A vassal's gross income is computed the same way, recursively, but before
// its own payment upward, so each level takes its tenth exactly once.
//
// On a missing town it returns core.NoValue with core.ErrTownNotFound.
//
// Steps:
//  1. Collect the subtree of id in pre-order with an explicit stack.
//  2. Walk that order backwards so every vassal is totalled before its master.
//  3. gross(t) = tax(t) + Σ tenth(gross(v)) over the direct vassals v of t.
//  4. Deduct tenth(gross(id)) when id has a master.
func NetTax(r *core.Realm, id core.TownID) (int, error) {
	root, err := resolve(r, id)
	if err != nil {
		return core.NoValue, err
	}

	tc := traversal.New(r.Cap())
	order := make([]core.Handle, 0, 8)
	stack := []core.Handle{root}
	tc.Visit(root)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, h)
		for _, v := range r.VassalsOf(h) {
			if tc.Visited(v) {
				return core.NoValue, fmt.Errorf("%w: at %q", ErrTreeCycle, r.ID(v))
			}
			tc.Visit(v)
			stack = append(stack, v)
		}
	}

	gross := make(map[core.Handle]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		h := order[i]
		total := r.TaxOf(h)
		for _, v := range r.VassalsOf(h) {
			total += tenth(gross[v])
		}
		gross[h] = total
	}

	net := gross[root]
	if r.MasterOf(root) != core.NoHandle {
		net -= tenth(net)
	}

	return net, nil
}

// tenth returns floor(x / taxShare).
func tenth(x int) int {
	q := x / taxShare
	if x%taxShare != 0 && x < 0 {
		q--
	}

	return q
}
