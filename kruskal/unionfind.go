package kruskal

import "github.com/katalvlaran/realm/core"

// UnionFind is a disjoint-set forest over handles [0, n), with path
// compression and union by size.
//
// Complexity: every operation is O(α(n)) amortized.
type UnionFind struct {
	parent []core.Handle
	size   []int
	sets   int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]core.Handle, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range u.parent {
		u.parent[i] = core.Handle(i)
		u.size[i] = 1
	}

	return u
}

// Find returns the representative of the set containing h.
func (u *UnionFind) Find(h core.Handle) core.Handle {
	root := h
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// compress
	for u.parent[h] != root {
		next := u.parent[h]
		u.parent[h] = root
		h = next
	}

	return root
}

// Union merges the sets of a and b, attaching the smaller under the larger.
// It reports false when they were already one set.
func (u *UnionFind) Union(a, b core.Handle) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	u.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (u *UnionFind) Connected(a, b core.Handle) bool {
	return u.Find(a) == u.Find(b)
}

// Components returns the current number of disjoint sets.
func (u *UnionFind) Components() int { return u.sets }

// Size returns the number of elements in the set containing h.
func (u *UnionFind) Size(h core.Handle) int { return u.size[u.Find(h)] }
