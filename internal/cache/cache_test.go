package cache

import (
	"context"
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

func TestLocalTableDelegatesToShanten(t *testing.T) {
	free := mustMultiset(t, "123m11222p234456s")
	value, err := (LocalTable{}).Shanten(context.Background(), free, nil)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), value)
}

func TestKeyIsDeterministicAndDistinguishesHands(t *testing.T) {
	a := mustMultiset(t, "123m11222p23456s")
	b := mustMultiset(t, "123m11222p23457s")

	assert.Equal(t, key(a, nil), key(a, nil))
	assert.NotEqual(t, key(a, nil), key(b, nil))
}
