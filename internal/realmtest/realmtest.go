// Package realmtest builds core.Realm fixtures for tests across the module.
//
// Fixture helpers fail the test immediately on any setup error, so test bodies
// only assert on the behaviour under test.
package realmtest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// Town describes one fixture town. An empty Name defaults to the ID.
type Town struct {
	ID   core.TownID
	Name string
	X, Y int
	Tax  int
}

// Pair is an ordered pair of town IDs: a road (either order) or a
// vassal→master link.
type Pair [2]core.TownID

// New returns an empty realm that logs through t.
func New(t testing.TB) *core.Realm {
	t.Helper()

	return core.New(core.WithLogger(slogt.New(t)))
}

// Towns registers every town in order.
func Towns(t testing.TB, r *core.Realm, towns ...Town) {
	t.Helper()
	for _, tw := range towns {
		name := tw.Name
		if name == "" {
			name = string(tw.ID)
		}
		require.NoError(t, r.AddTown(tw.ID, name, geo.Coord{X: tw.X, Y: tw.Y}, tw.Tax))
	}
}

// Roads adds every road in order.
func Roads(t testing.TB, r *core.Realm, roads ...Pair) {
	t.Helper()
	for _, p := range roads {
		require.NoError(t, r.AddRoad(p[0], p[1]))
	}
}

// Vassals attaches each pair as vassal→master, in order.
func Vassals(t testing.TB, r *core.Realm, links ...Pair) {
	t.Helper()
	for _, p := range links {
		require.NoError(t, r.AddVassalship(p[0], p[1]))
	}
}

// PathLength sums the road lengths along path, failing if a hop has no road.
func PathLength(t testing.TB, r *core.Realm, path []core.TownID) geo.Distance {
	t.Helper()
	var total geo.Distance
	for i := 1; i < len(path); i++ {
		d, err := r.RoadLength(path[i-1], path[i])
		require.NoError(t, err, "hop %s-%s", path[i-1], path[i])
		total += d
	}

	return total
}

// Random builds a realm of n towns "T0".."T{n-1}" on a 100×100 grid with up
// to m random roads. Duplicate and self roads are skipped, so the final road
// count may be lower than m. The same seed always yields the same realm.
func Random(t testing.TB, seed int64, n, m int) *core.Realm {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r := New(t)
	for i := 0; i < n; i++ {
		Towns(t, r, Town{ID: ID(i), X: rng.Intn(100), Y: rng.Intn(100), Tax: rng.Intn(200)})
	}
	for k := 0; k < m; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		_ = r.AddRoad(ID(a), ID(b)) // ErrRoadExists on repeats is expected
	}

	return r
}

// ID returns the fixture ID of the i-th random town.
func ID(i int) core.TownID {
	return core.TownID(fmt.Sprintf("T%d", i))
}

// Line builds the three-town line A(0,0) – B(3,4) – C(6,8) with both roads
// of length 5.
func Line(t testing.TB) *core.Realm {
	t.Helper()
	r := New(t)
	Towns(t, r,
		Town{ID: "A", X: 0, Y: 0},
		Town{ID: "B", X: 3, Y: 4},
		Town{ID: "C", X: 6, Y: 8},
	)
	Roads(t, r, Pair{"A", "B"}, Pair{"B", "C"})

	return r
}

// AllPairs is a Floyd–Warshall reference over the current road network.
// With weighted false every road counts as one hop.
type AllPairs struct {
	index map[core.TownID]int
	dist  [][]int
}

const unreachable = int(^uint(0) >> 2)

// NewAllPairs computes every pairwise shortest distance in O(V³).
func NewAllPairs(r *core.Realm, weighted bool) *AllPairs {
	ids := r.Towns()
	ap := &AllPairs{index: make(map[core.TownID]int, len(ids)), dist: make([][]int, len(ids))}
	for i, id := range ids {
		ap.index[id] = i
		ap.dist[i] = make([]int, len(ids))
		for j := range ap.dist[i] {
			if i != j {
				ap.dist[i][j] = unreachable
			}
		}
	}
	for _, rd := range r.Roads() {
		w := 1
		if weighted {
			w = int(rd.Length)
		}
		a, b := ap.index[rd.From], ap.index[rd.To]
		ap.dist[a][b], ap.dist[b][a] = w, w
	}
	n := len(ids)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := ap.dist[i][k] + ap.dist[k][j]; d < ap.dist[i][j] {
					ap.dist[i][j] = d
				}
			}
		}
	}

	return ap
}

// Dist returns the shortest distance from a to b and whether b is reachable.
func (ap *AllPairs) Dist(a, b core.TownID) (int, bool) {
	d := ap.dist[ap.index[a]][ap.index[b]]

	return d, d < unreachable
}

// Components counts connected components of the road network.
func (ap *AllPairs) Components() int {
	n := len(ap.dist)
	seen := make([]bool, n)
	count := 0
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		count++
		for j := 0; j < n; j++ {
			if ap.dist[i][j] < unreachable {
				seen[j] = true
			}
		}
	}

	return count
}
