package shanten

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mahjong/internal/meld"
	"mahjong/internal/tiles"
)

// mustMeld parses a small MSPZ run like "333z" or "123m" into a single
// declared meld for test setup.
func mustMeld(t *testing.T, s string) []meld.Meld {
	t.Helper()
	c, err := tiles.ParseMultiset(s)
	require.NoError(t, err)
	m, err := meld.New(c.AllIDs(), false)
	require.NoError(t, err)
	return []meld.Meld{m}
}
