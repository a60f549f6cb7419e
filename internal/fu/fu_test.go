package fu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
	"mahjong/internal/yaku"
)

func TestPinfuRonIsThirtyFu(t *testing.T) {
	free, err := tiles.ParseMultiset("234567m23455p678s")
	require.NoError(t, err)
	ins, err := shanten.EnumerateWinning(free, nil, tiles.Sou8, true)
	require.NoError(t, err)
	require.NotEmpty(t, ins)

	var chosen *shanten.Interpretation
	for i := range ins {
		if ins[i].Shape == shanten.ShapeStandard && ins[i].Wait == shanten.WaitRyanmen {
			chosen = &ins[i]
			break
		}
	}
	require.NotNil(t, chosen)

	hand := yaku.HandInfo{Closed: true}
	result := Calculate(*chosen, hand, yaku.WinInfo{Source: yaku.SourceDiscard})
	assert.Equal(t, 30, result) // pinfu ron: 20 base + 10 closed-ron = 30
}

func TestChiitoitsuIsFixedTwentyFive(t *testing.T) {
	free, err := tiles.ParseMultiset("445566m4488p3399s")
	require.NoError(t, err)
	ins, err := shanten.EnumerateWinning(free, nil, tiles.Man6, true)
	require.NoError(t, err)

	var chosen *shanten.Interpretation
	for i := range ins {
		if ins[i].Shape == shanten.ShapeChiitoitsu {
			chosen = &ins[i]
		}
	}
	require.NotNil(t, chosen)
	result := Calculate(*chosen, yaku.HandInfo{Closed: true}, yaku.WinInfo{Source: yaku.SourceDiscard})
	assert.Equal(t, 25, result)
}

func TestClosedTripletTanki(t *testing.T) {
	free, err := tiles.ParseMultiset("111m234p456s789s77z")
	require.NoError(t, err)
	ins, err := shanten.EnumerateWinning(free, nil, tiles.Red, true)
	require.NoError(t, err)

	var chosen *shanten.Interpretation
	for i := range ins {
		if ins[i].Shape == shanten.ShapeStandard && ins[i].Wait == shanten.WaitTanki {
			chosen = &ins[i]
		}
	}
	require.NotNil(t, chosen)
	// 20 base + 8 (closed terminal triplet 111m) + 2 (dragon pair) + 2 (tanki) + 10 (closed ron) = 42 -> 50
	result := Calculate(*chosen, yaku.HandInfo{Closed: true}, yaku.WinInfo{Source: yaku.SourceDiscard})
	assert.Equal(t, 50, result)
}
