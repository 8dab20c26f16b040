package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realm/astar"
	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/internal/realmtest"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestRoute_Errors(t *testing.T) {
	_, _, err := astar.ShortestRoute(nil, "A", "B")
	assert.ErrorIs(t, err, astar.ErrRealmNil)

	r := realmtest.Line(t)
	route, d, err := astar.ShortestRoute(r, "A", "ghost")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
	assert.Equal(t, []core.TownID{core.NoTownID}, route)
	assert.Equal(t, geo.NoDistance, d)

	route, _, err = astar.ShortestRoute(r, "ghost", "A")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
	assert.Equal(t, []core.TownID{core.NoTownID}, route)

	_, _, err = astar.ShortestRoute(r, "A", "C", astar.WithMaxDistance(-1))
	assert.ErrorIs(t, err, astar.ErrBadMaxDistance)

	_, err = astar.Dijkstra(r, "ghost")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
}

// ------------------------------------------------------------------------
// 2. Small realms
// ------------------------------------------------------------------------

func TestShortestRoute_Line(t *testing.T) {
	r := realmtest.Line(t)

	route, d, err := astar.ShortestRoute(r, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"A", "B", "C"}, route)
	assert.Equal(t, geo.Distance(10), d)

	route, d, err = astar.ShortestRoute(r, "B", "B")
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.Zero(t, d)
}

func TestShortestRoute_Unreachable(t *testing.T) {
	r := realmtest.Line(t)
	realmtest.Towns(t, r, realmtest.Town{ID: "Z", X: 40, Y: 40})

	route, d, err := astar.ShortestRoute(r, "A", "Z")
	require.NoError(t, err)
	assert.NotNil(t, route)
	assert.Empty(t, route)
	assert.Equal(t, geo.NoDistance, d)
}

// TestShortestRoute_LongerHopsShorterLength prefers three short roads over
// one long detour.
func TestShortestRoute_LongerHopsShorterLength(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "S", X: 0, Y: 0},
		realmtest.Town{ID: "P", X: 4, Y: 1},
		realmtest.Town{ID: "Q", X: 8, Y: -1},
		realmtest.Town{ID: "T", X: 12, Y: 0},
		realmtest.Town{ID: "U", X: 6, Y: 30},
	)
	realmtest.Roads(t, r,
		realmtest.Pair{"S", "U"},
		realmtest.Pair{"U", "T"},
		realmtest.Pair{"S", "P"},
		realmtest.Pair{"P", "Q"},
		realmtest.Pair{"Q", "T"},
	)

	route, d, err := astar.ShortestRoute(r, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"S", "P", "Q", "T"}, route)
	assert.Equal(t, realmtest.PathLength(t, r, route), d)
	assert.Equal(t, geo.Distance(4+4+4), d)
}

func TestShortestRoute_MaxDistance(t *testing.T) {
	r := realmtest.Line(t)

	route, d, err := astar.ShortestRoute(r, "A", "C", astar.WithMaxDistance(10))
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"A", "B", "C"}, route)
	assert.Equal(t, geo.Distance(10), d)

	route, d, err = astar.ShortestRoute(r, "A", "C", astar.WithMaxDistance(9))
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.Equal(t, geo.NoDistance, d)
}

func TestDijkstra_Line(t *testing.T) {
	r := realmtest.Line(t)
	realmtest.Towns(t, r, realmtest.Town{ID: "Z", X: 40, Y: 40})

	dist, err := astar.Dijkstra(r, "A")
	require.NoError(t, err)
	assert.Equal(t, map[core.TownID]geo.Distance{"A": 0, "B": 5, "C": 10}, dist)
}

// ------------------------------------------------------------------------
// 3. Cross-validation on seeded random realms
// ------------------------------------------------------------------------

// TestShortestRoute_MatchesReferences checks A* against both Dijkstra and
// Floyd–Warshall for every ordered pair.
func TestShortestRoute_MatchesReferences(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		r := realmtest.Random(t, seed, 16, 30)
		ref := realmtest.NewAllPairs(r, true)
		ids := r.Towns()
		for _, a := range ids {
			dist, err := astar.Dijkstra(r, a)
			require.NoError(t, err)
			for _, b := range ids {
				route, d, err := astar.ShortestRoute(r, a, b)
				require.NoError(t, err)

				want, ok := ref.Dist(a, b)
				dj, djOK := dist[b]
				require.Equal(t, ok, djOK, "seed %d %s→%s reachability", seed, a, b)
				if ok {
					require.Equal(t, want, int(dj), "seed %d %s→%s dijkstra", seed, a, b)
				}

				switch {
				case a == b:
					assert.Empty(t, route)
					assert.Zero(t, d)
				case !ok:
					assert.Empty(t, route)
					assert.Equal(t, geo.NoDistance, d)
				default:
					require.NotEmpty(t, route)
					assert.Equal(t, a, route[0])
					assert.Equal(t, b, route[len(route)-1])
					assert.Equal(t, want, int(d), "seed %d %s→%s", seed, a, b)
					assert.Equal(t, d, realmtest.PathLength(t, r, route))
				}
			}
		}
	}
}

// TestShortestRoute_DenseGrid stresses reopening on many near-equal routes.
func TestShortestRoute_DenseGrid(t *testing.T) {
	r := realmtest.New(t)
	const side = 7
	id := func(x, y int) core.TownID { return realmtest.ID(y*side + x) }
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			// jitter coordinates so floored lengths differ
			realmtest.Towns(t, r, realmtest.Town{ID: id(x, y), X: x*7 + (y*3)%4, Y: y*7 + (x*5)%3})
		}
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x+1 < side {
				realmtest.Roads(t, r, realmtest.Pair{id(x, y), id(x+1, y)})
			}
			if y+1 < side {
				realmtest.Roads(t, r, realmtest.Pair{id(x, y), id(x, y+1)})
			}
			if x+1 < side && y+1 < side {
				realmtest.Roads(t, r, realmtest.Pair{id(x, y), id(x+1, y+1)})
			}
		}
	}

	ref := realmtest.NewAllPairs(r, true)
	for _, a := range r.Towns() {
		for _, b := range r.Towns() {
			if a == b {
				continue
			}
			_, d, err := astar.ShortestRoute(r, a, b)
			require.NoError(t, err)
			want, _ := ref.Dist(a, b)
			require.Equal(t, want, int(d), "%s→%s", a, b)
		}
	}
}
