package shanten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/tiles"
)

func mustMultiset(t *testing.T, s string) tiles.CountArray {
	t.Helper()
	c, err := tiles.ParseMultiset(s)
	require.NoError(t, err)
	return c
}

func TestShantenCompleteHand(t *testing.T) {
	free := mustMultiset(t, "123m11222p234456s")
	s, err := Shanten(free, nil)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), s)
}

func TestShantenTenpai(t *testing.T) {
	// 123m 11222p 23456s: 13 tiles, tenpai (needs 1s or 4s to finish 234/456+... )
	free := mustMultiset(t, "123m11222p23456s")
	s, err := Shanten(free, nil)
	require.NoError(t, err)
	assert.Equal(t, int8(0), s)
}

func TestShantenSevenPairsTenpai(t *testing.T) {
	// six pairs plus a lone tile: tenpai for chiitoitsu, waiting on 6m.
	free := mustMultiset(t, "44556m4488p3399s")
	s, err := Shanten(free, nil)
	require.NoError(t, err)
	assert.Equal(t, int8(0), s)
}

func TestShantenSevenPairsWon(t *testing.T) {
	free := mustMultiset(t, "445566m4488p3399s")
	s, err := Shanten(free, nil)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), s)
}

func TestShantenSevenPairsBlockedByDeclared(t *testing.T) {
	declared := mustMeld(t, "333z")
	free := mustMultiset(t, "4455667788p99s")
	_, ok := SevenPairsShanten(free, declared)
	assert.False(t, ok)
}

func TestShantenInvalidHandTotal(t *testing.T) {
	var free tiles.CountArray
	require.NoError(t, free.Add(tiles.Man1, false))
	_, err := Shanten(free, nil)
	assert.Error(t, err)
}

func TestUniversalInvariantShantenStepsByAtMostOne(t *testing.T) {
	free := mustMultiset(t, "123m11222p23456s")
	base, err := Shanten(free, nil)
	require.NoError(t, err)
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		trial := free.Clone()
		if trial.Count(id) >= 4 {
			continue
		}
		require.NoError(t, trial.Add(id, false))
		s, err := Shanten(trial, nil)
		require.NoError(t, err)
		assert.Contains(t, []int8{base - 1, base}, s)
	}
}

func TestUkiereMatchesDefinition(t *testing.T) {
	free := mustMultiset(t, "123m11222p23456s")
	base, err := Shanten(free, nil)
	require.NoError(t, err)

	uk, err := Ukiere(free, nil, tiles.CountArray{})
	require.NoError(t, err)

	found := map[tiles.ID]bool{}
	for _, u := range uk {
		found[u.ID] = true
	}
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		if free.Count(id) >= 4 {
			continue
		}
		trial := free.Clone()
		require.NoError(t, trial.Add(id, false))
		s, err := Shanten(trial, nil)
		require.NoError(t, err)
		assert.Equal(t, s < base, found[id], "tile %s", id)
	}
}
