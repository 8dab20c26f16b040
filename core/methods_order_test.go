package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/internal/realmtest"
)

func TestTownsAlphabetically_TiesByID(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "3", Name: "Oulu"},
		realmtest.Town{ID: "2", Name: "Espoo"},
		realmtest.Town{ID: "1", Name: "Oulu"},
		realmtest.Town{ID: "4", Name: "Lahti"},
	)

	assert.Equal(t, []core.TownID{"2", "4", "1", "3"}, r.TownsAlphabetically())
}

// TestTownsByDistance_FlooredTies covers two towns whose real distances
// differ (√50 ≈ 7.07 and 7) but floor to the same value.
func TestTownsByDistance_FlooredTies(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "far", X: 30, Y: 40},
		realmtest.Town{ID: "b", X: 5, Y: 5},
		realmtest.Town{ID: "a", X: 7, Y: 0},
		realmtest.Town{ID: "home", X: 0, Y: 1},
	)

	assert.Equal(t, []core.TownID{"home", "a", "b", "far"}, r.TownsByDistance())

	min, err := r.MinDistance()
	require.NoError(t, err)
	assert.Equal(t, core.TownID("home"), min)

	max, err := r.MaxDistance()
	require.NoError(t, err)
	assert.Equal(t, core.TownID("far"), max)
}

func TestMinMaxDistance_TieBreak(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "y", X: 5, Y: 5},
		realmtest.Town{ID: "x", X: 7, Y: 0},
	)

	min, err := r.MinDistance()
	require.NoError(t, err)
	max, err := r.MaxDistance()
	require.NoError(t, err)
	assert.Equal(t, core.TownID("x"), min)
	assert.Equal(t, core.TownID("x"), max)
}

func TestMinMaxDistance_Empty(t *testing.T) {
	r := realmtest.New(t)

	id, err := r.MinDistance()
	assert.ErrorIs(t, err, core.ErrEmptyRealm)
	assert.Equal(t, core.NoTownID, id)

	id, err = r.MaxDistance()
	assert.ErrorIs(t, err, core.ErrEmptyRealm)
	assert.Equal(t, core.NoTownID, id)

	assert.Empty(t, r.TownsByDistance())
	assert.Empty(t, r.TownsAlphabetically())
}

func TestTownsNearest(t *testing.T) {
	r := realmtest.New(t)
	realmtest.Towns(t, r,
		realmtest.Town{ID: "A", X: 0, Y: 0},
		realmtest.Town{ID: "B", X: 10, Y: 10},
		realmtest.Town{ID: "C", X: 9, Y: 9},
		realmtest.Town{ID: "D", X: 11, Y: 9},
	)

	// B, C and D are all exactly 1 away from (10,9); the tie falls back to ID.
	got := r.TownsNearest(geo.Coord{X: 10, Y: 9})
	assert.Equal(t, []core.TownID{"B", "C", "D", "A"}, got)
}
