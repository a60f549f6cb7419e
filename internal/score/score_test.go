package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/meld"
	"mahjong/internal/tiles"
	"mahjong/internal/yaku"
)

func mustMultiset(t *testing.T, s string) tiles.CountArray {
	t.Helper()
	c, err := tiles.ParseMultiset(s)
	require.NoError(t, err)
	return c
}

func mustDeclared(t *testing.T, s string, closed bool) []meld.Meld {
	t.Helper()
	c, err := tiles.ParseMultiset(s)
	require.NoError(t, err)
	m, err := meld.New(c.AllIDs(), closed)
	require.NoError(t, err)
	return []meld.Meld{m}
}

// Scenario 3: seven pairs with no other yaku; tsumo adds menzentsumo.
func TestScoreSevenPairsRonAndTsumo(t *testing.T) {
	base := mustMultiset(t, "44556m4488p3399s")
	hand := yaku.HandInfo{Closed: true, RoundWind: tiles.WindEast, SeatWind: tiles.WindEast}

	free := base.Clone()
	require.NoError(t, free.Add(tiles.Man6, false))
	ronResult, err := Score(Request{
		Free: free, WinningTile: tiles.Man6, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ronResult.Han)
	assert.Equal(t, 25, ronResult.Fu)

	tsumoResult, err := Score(Request{
		Free: free, WinningTile: tiles.Man6, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceSelfDraw},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tsumoResult.Han)
	assert.Equal(t, 25, tsumoResult.Fu)
}

// Scenario 4: open honitsu + single dragon yakuhai, dealer vs non-dealer
// pair-fu difference (double wind vs single wind).
func TestScoreOpenHonitsuShanponDealerVsNonDealer(t *testing.T) {
	declared := mustDeclared(t, "333z", false)
	free := mustMultiset(t, "334455p1166z")
	require.NoError(t, free.Add(tiles.Green, false))

	dealer := yaku.HandInfo{Closed: false, RoundWind: tiles.WindEast, SeatWind: tiles.WindEast}
	nonDealer := yaku.HandInfo{Closed: false, RoundWind: tiles.WindEast, SeatWind: tiles.WindSouth}

	dealerResult, err := Score(Request{
		Free: free, Declared: declared, WinningTile: tiles.Green, Hand: dealer,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dealerResult.Han)
	assert.Equal(t, 40, dealerResult.Fu)

	nonDealerResult, err := Score(Request{
		Free: free, Declared: declared, WinningTile: tiles.Green, Hand: nonDealer,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, nonDealerResult.Han)
	assert.Equal(t, 30, nonDealerResult.Fu)
}

// Scenario 5: open chanta + single dragon yakuhai, identical rounded fu
// whether won by ron or tsumo.
func TestScoreOpenChantaYakuhaiRonAndTsumo(t *testing.T) {
	declared := mustDeclared(t, "777z", false)
	base := mustMultiset(t, "111m111p1112s")
	hand := yaku.HandInfo{Closed: false, RoundWind: tiles.WindEast, SeatWind: tiles.WindEast}

	free := base.Clone()
	require.NoError(t, free.Add(tiles.Sou3, false))

	ronResult, err := Score(Request{
		Free: free, Declared: declared, WinningTile: tiles.Sou3, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ronResult.Han)
	assert.Equal(t, 50, ronResult.Fu)

	tsumoResult, err := Score(Request{
		Free: free, Declared: declared, WinningTile: tiles.Sou3, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceSelfDraw},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tsumoResult.Han)
	assert.Equal(t, 50, tsumoResult.Fu)
}

// Scenario 6: chiitoitsu that is also honroutou (every pair terminal/honor).
func TestScoreChiitoitsuHonroutou(t *testing.T) {
	base := mustMultiset(t, "99m11p1199s22334z")
	free := base.Clone()
	require.NoError(t, free.Add(tiles.North, false))
	hand := yaku.HandInfo{Closed: true, RoundWind: tiles.WindEast, SeatWind: tiles.WindEast}

	result, err := Score(Request{
		Free: free, WinningTile: tiles.North, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Han)
	assert.Equal(t, 25, result.Fu)
}

// Scenario 2: closed pinfu with one dora, ron vs tsumo (tsumo keeps the
// pinfu exception that suppresses the self-draw +2 fu).
func TestScorePinfuWithDoraRonAndTsumo(t *testing.T) {
	free := mustMultiset(t, "56789m344556p88s")
	require.NoError(t, free.Add(tiles.Man4, false))
	hand := yaku.HandInfo{
		Closed: true, Riichi: yaku.RiichiDeclared,
		RoundWind: tiles.WindEast, SeatWind: tiles.WindEast,
		Dora: []tiles.ID{tiles.Pin3},
	}

	ronResult, err := Score(Request{
		Free: free, WinningTile: tiles.Man4, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ronResult.Han)
	assert.Equal(t, 30, ronResult.Fu)

	tsumoResult, err := Score(Request{
		Free: free, WinningTile: tiles.Man4, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceSelfDraw},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, tsumoResult.Han)
	assert.Equal(t, 20, tsumoResult.Fu)
}

func TestScoreNoYakuReturnsZeroResult(t *testing.T) {
	// A structurally complete closed hand won by ron with no riichi: the
	// 222p triplet rules out pinfu, the terminals rule out tanyao, and no
	// other yaku applies, so the result is all zero.
	free := mustMultiset(t, "123m11222p123456s")
	hand := yaku.HandInfo{Closed: true, RoundWind: tiles.WindEast, SeatWind: tiles.WindSouth}
	result, err := Score(Request{
		Free: free, WinningTile: tiles.Sou1, Hand: hand,
		Win: yaku.WinInfo{Source: yaku.SourceDiscard},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Han)
	assert.Equal(t, 0, result.Fu)
	assert.Equal(t, 0, result.Points.Total)
}
