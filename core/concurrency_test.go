// Package core_test verifies Realm stays consistent under concurrent use.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/internal/realmtest"
)

// TestConcurrentAddRoad ensures concurrent AddRoad calls from one hub are
// all recorded, symmetrically.
func TestConcurrentAddRoad(t *testing.T) {
	r := realmtest.New(t)
	const num = 200
	require.NoError(t, r.AddTown("Hub", "Hub", geo.Origin, 0))
	for i := 0; i < num; i++ {
		require.NoError(t, r.AddTown(core.TownID(fmt.Sprintf("V%d", i)), "v", geo.Coord{X: i, Y: 1}, 0))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- r.AddRoad("Hub", core.TownID(fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := r.RoadsFrom("Hub")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, r.RoadCount())
}

// TestConcurrentReadersAndRemovals mixes queries with town removals; the
// race detector and the final invariant check catch any unguarded access.
func TestConcurrentReadersAndRemovals(t *testing.T) {
	r := realmtest.Random(t, 7, 60, 150)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 60; i += 2 {
			_ = r.RemoveTown(realmtest.ID(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = r.TownsNearest(geo.Coord{X: i % 100, Y: 50})
			_, _ = r.RoadsFrom(realmtest.ID(i % 60))
			_ = r.Roads()
		}
	}()
	wg.Wait()

	require.Equal(t, 30, r.TownCount())
	for _, rd := range r.Roads() {
		fwd, err := r.RoadLength(rd.From, rd.To)
		require.NoError(t, err)
		back, err := r.RoadLength(rd.To, rd.From)
		require.NoError(t, err)
		require.Equal(t, fwd, back)
	}
}
