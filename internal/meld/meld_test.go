package meld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/tiles"
)

func ids(strs ...string) []tiles.ID {
	out := make([]tiles.ID, len(strs))
	for i, s := range strs {
		out[i] = tiles.MustParse(s)
	}
	return out
}

func TestClassifyComplete(t *testing.T) {
	m, err := New(ids("3m", "4m", "5m"), true)
	require.NoError(t, err)
	assert.Equal(t, Sequence, m.Variant)
	assert.True(t, m.IsComplete())

	m, err = New(ids("7m", "7m", "7m"), false)
	require.NoError(t, err)
	assert.Equal(t, Triplet, m.Variant)

	m, err = New(ids("7m", "7m", "7m", "7m"), false)
	require.NoError(t, err)
	assert.Equal(t, Quadruplet, m.Variant)
}

func TestClassifyPartials(t *testing.T) {
	m, err := New(ids("3m", "4m"), true)
	require.NoError(t, err)
	assert.Equal(t, Ryanmen, m.Variant)

	m, err = New(ids("1m", "2m"), true)
	require.NoError(t, err)
	assert.Equal(t, Penchan, m.Variant)

	m, err = New(ids("8m", "9m"), true)
	require.NoError(t, err)
	assert.Equal(t, Penchan, m.Variant)

	m, err = New(ids("3m", "5m"), true)
	require.NoError(t, err)
	assert.Equal(t, Kanchan, m.Variant)

	m, err = New(ids("2z", "2z"), true)
	require.NoError(t, err)
	assert.Equal(t, Pair, m.Variant)

	m, err = New(ids("2z"), true)
	require.NoError(t, err)
	assert.Equal(t, SingleTile, m.Variant)
}

func TestInvalidMeld(t *testing.T) {
	_, err := New(ids("1m", "4m"), true)
	assert.Error(t, err)
	_, err = New(ids("1m", "1p"), true)
	assert.Error(t, err)
}

func TestReorderingInvariant(t *testing.T) {
	a, err := New(ids("5m", "3m", "4m"), true)
	require.NoError(t, err)
	b, err := New(ids("3m", "4m", "5m"), true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompletingTiles(t *testing.T) {
	m, _ := New(ids("3m", "4m"), true)
	got := m.CompletingTiles()
	assert.ElementsMatch(t, ids("2m", "5m"), got)

	m, _ = New(ids("1m", "2m"), true)
	assert.ElementsMatch(t, ids("3m"), m.CompletingTiles())

	m, _ = New(ids("3m", "5m"), true)
	assert.ElementsMatch(t, ids("4m"), m.CompletingTiles())

	m, _ = New(ids("7m", "7m", "7m"), true)
	assert.Empty(t, m.CompletingTiles())
}
