package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realm/bfs"
	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/internal/realmtest"
)

// TestFewestRoads_Errors verifies that invalid inputs and options are rejected.
func TestFewestRoads_Errors(t *testing.T) {
	_, err := bfs.FewestRoads(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrRealmNil)

	r := realmtest.Line(t)
	route, err := bfs.FewestRoads(r, "ghost", "A")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
	assert.Equal(t, []core.TownID{core.NoTownID}, route)

	route, err = bfs.FewestRoads(r, "A", "ghost")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
	assert.Equal(t, []core.TownID{core.NoTownID}, route)

	route, err = bfs.FewestRoads(r, "A", "C", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.Nil(t, route)
}

func TestFewestRoads_Line(t *testing.T) {
	r := realmtest.Line(t)

	route, err := bfs.FewestRoads(r, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"A", "B", "C"}, route)

	route, err = bfs.FewestRoads(r, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"C", "B", "A"}, route)

	route, err = bfs.FewestRoads(r, "B", "B")
	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestFewestRoads_Unreachable(t *testing.T) {
	r := realmtest.Line(t)
	realmtest.Towns(t, r, realmtest.Town{ID: "Z", X: 50, Y: 50})

	route, err := bfs.FewestRoads(r, "A", "Z")
	require.NoError(t, err)
	assert.NotNil(t, route)
	assert.Empty(t, route)
}

// TestFewestRoads_PrefersHopsOverLength checks road lengths are ignored.
func TestFewestRoads_PrefersHopsOverLength(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "S", X: 0, Y: 0},
		realmtest.Town{ID: "M1", X: 1, Y: 0},
		realmtest.Town{ID: "M2", X: 2, Y: 0},
		realmtest.Town{ID: "FAR", X: 0, Y: 90},
		realmtest.Town{ID: "T", X: 3, Y: 0},
	)
	realmtest.Roads(t, r,
		realmtest.Pair{"S", "M1"},
		realmtest.Pair{"M1", "M2"},
		realmtest.Pair{"M2", "T"},
		realmtest.Pair{"S", "FAR"},
		realmtest.Pair{"FAR", "T"},
	)

	route, err := bfs.FewestRoads(r, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"S", "FAR", "T"}, route)
}

// TestFewestRoads_MatchesReference compares hop counts with Floyd–Warshall
// on seeded random realms.
func TestFewestRoads_MatchesReference(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		r := realmtest.Random(t, seed, 14, 18)
		ref := realmtest.NewAllPairs(r, false)
		ids := r.Towns()
		for _, a := range ids {
			for _, b := range ids {
				route, err := bfs.FewestRoads(r, a, b)
				require.NoError(t, err)
				hops, ok := ref.Dist(a, b)
				switch {
				case a == b || !ok:
					assert.Empty(t, route, "seed %d %s→%s", seed, a, b)
				default:
					require.NotEmpty(t, route, "seed %d %s→%s", seed, a, b)
					assert.Equal(t, a, route[0])
					assert.Equal(t, b, route[len(route)-1])
					assert.Equal(t, hops, len(route)-1, "seed %d %s→%s", seed, a, b)
					realmtest.PathLength(t, r, route) // every hop is a road
				}
			}
		}
	}
}

func TestWalk(t *testing.T) {
	r := realmtest.Line(t)
	realmtest.Towns(t, r, realmtest.Town{ID: "Z", X: 50, Y: 50})

	res, err := bfs.Walk(r, "B")
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"B", "A", "C"}, res.Order)
	assert.Equal(t, map[core.TownID]int{"B": 0, "A": 1, "C": 1}, res.Depth)

	res, err = bfs.Walk(r, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.TownID{"A", "B"}, res.Order)

	_, err = bfs.Walk(r, "ghost")
	assert.ErrorIs(t, err, core.ErrTownNotFound)
}

func TestWalk_HooksAndCancel(t *testing.T) {
	r := realmtest.Line(t)

	stop := errors.New("stop")
	_, err := bfs.Walk(r, "A", bfs.WithOnVisit(func(id core.TownID, _ int) error {
		if id == "B" {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.FewestRoads(r, "A", "C", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFewestRoads_TownsAddedDuringSearch runs searches from a hub while
// another goroutine keeps attaching new towns to it. Handles newer than the
// search's context must not break it.
func TestFewestRoads_TownsAddedDuringSearch(t *testing.T) {
	r := realmtest.New(t)
	require.NoError(t, r.AddTown("Hub", "Hub", geo.Coord{}, 0))
	require.NoError(t, r.AddTown("Z", "Island", geo.Coord{X: -50, Y: -50}, 0))

	const added = 300
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < added; i++ {
			id := core.TownID(fmt.Sprintf("T%03d", i))
			if err := r.AddTown(id, "", geo.Coord{X: i + 1, Y: 1}, 0); err != nil {
				t.Error(err)
				return
			}
			if err := r.AddRoad("Hub", id); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for i := 0; i < 200; i++ {
		route, err := bfs.FewestRoads(r, "Hub", "Z")
		require.NoError(t, err)
		assert.Empty(t, route)
	}
	wg.Wait()

	res, err := bfs.Walk(r, "Hub")
	require.NoError(t, err)
	assert.Len(t, res.Order, added+1)
}
