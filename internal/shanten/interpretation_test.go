package shanten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong/internal/tiles"
)

func TestEnumerateWinningRyanmenWait(t *testing.T) {
	free := mustMultiset(t, "234567m23455p678s")
	ins, err := EnumerateWinning(free, nil, tiles.Sou8, true)
	require.NoError(t, err)
	require.NotEmpty(t, ins)

	var found bool
	for _, in := range ins {
		if in.Shape == ShapeStandard && in.Wait == WaitRyanmen {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEnumerateWinningChiitoitsu(t *testing.T) {
	free := mustMultiset(t, "445566m4488p3399s")
	ins, err := EnumerateWinning(free, nil, tiles.Man6, true)
	require.NoError(t, err)

	var found bool
	for _, in := range ins {
		if in.Shape == ShapeChiitoitsu {
			found = true
			assert.Len(t, in.Melds, 7)
		}
	}
	assert.True(t, found)
}

func TestEnumerateWinningShanpon(t *testing.T) {
	declared := mustMeld(t, "333z")
	free := mustMultiset(t, "334455p1166z")
	require.NoError(t, free.Add(tiles.Green, false))
	ins, err := EnumerateWinning(free, declared, tiles.Green, true)
	require.NoError(t, err)

	var found bool
	for _, in := range ins {
		if in.Shape == ShapeStandard && in.Wait == WaitShanpon {
			found = true
		}
	}
	assert.True(t, found)
}
