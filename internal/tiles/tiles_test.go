package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/errs"
)

func TestParseNumbered(t *testing.T) {
	id, red, err := Parse("3m")
	require.NoError(t, err)
	assert.Equal(t, Man3, id)
	assert.False(t, red)
}

func TestParseRedFive(t *testing.T) {
	id, red, err := Parse("0p")
	require.NoError(t, err)
	assert.Equal(t, Pin5, id)
	assert.True(t, red)
}

func TestParseHonor(t *testing.T) {
	id, red, err := Parse("7z")
	require.NoError(t, err)
	assert.Equal(t, Red, id)
	assert.False(t, red)
}

func TestParseMalformed(t *testing.T) {
	_, _, err := Parse("9z")
	assert.Error(t, err)
	_, _, err = Parse("x")
	assert.Error(t, err)
	_, _, err = Parse("0z")
	assert.Error(t, err)
}

func TestParseMultisetAndRender(t *testing.T) {
	c, err := ParseMultiset("123m11222p23456s")
	require.NoError(t, err)
	assert.Equal(t, 13, c.Total())
	assert.Equal(t, uint8(3), c.Count(Pin2))
	assert.Equal(t, "123m11222p23456s", c.Render())
}

func TestParseMultisetRejectsGarbage(t *testing.T) {
	_, err := ParseMultiset("12x3m")
	assert.Error(t, err)
}

func TestParseMultisetWhitespaceInsensitive(t *testing.T) {
	a, err := ParseMultiset("123m 456p")
	require.NoError(t, err)
	b, err := ParseMultiset("123m456p")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRedFiveRoundTrip(t *testing.T) {
	c, err := ParseMultiset("055m")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), c.Count(Man5))
	assert.Equal(t, uint8(1), c.Reds[Man5])
	assert.Equal(t, "055m", c.Render())
}

func TestAddRemoveUnderflow(t *testing.T) {
	var c CountArray
	require.NoError(t, c.Add(Man1, false))
	require.NoError(t, c.Remove(Man1))
	err := c.Remove(Man1)
	assert.ErrorIs(t, err, errs.ErrUnderflow)
}
