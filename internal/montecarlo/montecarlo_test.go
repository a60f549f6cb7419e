package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/tiles"
)

func mustParse(t *testing.T, s string) tiles.CountArray {
	t.Helper()
	c, err := tiles.ParseMultiset(s)
	require.NoError(t, err)
	return c
}

func TestRunRejectsNonOneShantenHand(t *testing.T) {
	// A complete (shanten -1) hand, not 1-shanten.
	hand := mustParse(t, "123456789m11222p")
	_, err := Run(Request{StartingHand: hand, Trials: 10, MaxDraws: 4})
	assert.Error(t, err)
}

func TestRunReportsSuccessesWithinBounds(t *testing.T) {
	// 345m11256p46778s6s with 2p discarded, the 1-shanten shape from the
	// worked example: draw one of the ukiere tiles to reach tenpai.
	hand := mustParse(t, "345m1156p46778s6s")

	result, err := Run(Request{StartingHand: hand, Trials: 200, MaxDraws: 12})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Trials)
	assert.LessOrEqual(t, result.Successes, result.Trials)
	assert.Len(t, result.DrawHistogram, 12)
	if result.Successes > 0 {
		assert.GreaterOrEqual(t, result.MeanDrawsToTenpai, 1.0)
		assert.LessOrEqual(t, result.MeanDrawsToTenpai, 12.0)
		assert.GreaterOrEqual(t, result.MeanUkiereAtTenpai, 0.0)
	}
}
