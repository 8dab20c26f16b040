package traversal

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// Infinity is the tentative distance of a town not yet reached.
const Infinity = geo.Distance(int(^uint(0) >> 1))

// Context is the scratch state of one traversal.
//
// Handles beyond Len read as untouched (not visited, no predecessor,
// Infinity) and writing one grows the context, so a town added to the realm
// while a query runs cannot index past the slices.
type Context struct {
	visited *bitset.BitSet
	prev    []core.Handle
	dist    []geo.Distance
}

// New returns a Context already Reset for an arena of n slots.
func New(n int) *Context {
	c := &Context{visited: bitset.New(uint(max(n, 0)))}
	c.Reset(n)

	return c
}

// Reset clears the context and resizes it to n slots: nothing visited, no
// predecessors, every distance at Infinity.
func (c *Context) Reset(n int) {
	if n < 0 {
		n = 0
	}
	c.visited.ClearAll()
	c.prev = resize(c.prev, n)
	c.dist = resize(c.dist, n)
	for i := 0; i < n; i++ {
		c.prev[i] = core.NoHandle
		c.dist[i] = Infinity
	}
}

// Len returns the number of slots the context currently holds.
func (c *Context) Len() int { return len(c.prev) }

// Visit marks h as visited.
func (c *Context) Visit(h core.Handle) {
	if h < 0 {
		return
	}
	c.visited.Set(uint(h))
}

// Visited reports whether h has been marked.
func (c *Context) Visited(h core.Handle) bool {
	return h >= 0 && c.visited.Test(uint(h))
}

// VisitedCount returns how many handles are marked.
func (c *Context) VisitedCount() int { return int(c.visited.Count()) }

// SetPrev records p as the predecessor of h.
func (c *Context) SetPrev(h, p core.Handle) {
	if c.grow(h) {
		c.prev[h] = p
	}
}

// Prev returns the predecessor of h, or core.NoHandle.
func (c *Context) Prev(h core.Handle) core.Handle {
	if h < 0 || int(h) >= len(c.prev) {
		return core.NoHandle
	}

	return c.prev[h]
}

// SetDist records the tentative distance of h.
func (c *Context) SetDist(h core.Handle, d geo.Distance) {
	if c.grow(h) {
		c.dist[h] = d
	}
}

// Dist returns the tentative distance of h, or Infinity.
func (c *Context) Dist(h core.Handle) geo.Distance {
	if h < 0 || int(h) >= len(c.dist) {
		return Infinity
	}

	return c.dist[h]
}

// PathTo follows predecessor links back from h and returns the handles in
// forward order, ending at h.
//
// The walk is bounded by Len, so a corrupted predecessor chain cannot loop.
func (c *Context) PathTo(h core.Handle) []core.Handle {
	var path []core.Handle
	for cur := h; cur != core.NoHandle && len(path) <= len(c.prev); cur = c.Prev(cur) {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// grow extends the slices so h is addressable. It reports false for a
// negative handle.
func (c *Context) grow(h core.Handle) bool {
	if h < 0 {
		return false
	}
	for i := len(c.prev); i <= int(h); i++ {
		c.prev = append(c.prev, core.NoHandle)
		c.dist = append(c.dist, Infinity)
	}

	return true
}

// IDs maps handles to town IDs in order.
func IDs(r *core.Realm, hs []core.Handle) []core.TownID {
	ids := make([]core.TownID, len(hs))
	for i, h := range hs {
		ids[i] = r.ID(h)
	}

	return ids
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}

	return s[:n]
}
