package weft

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	ctx2 := WithLogInfo(ctx, "kitty", 1)
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))

	assert.Equal(t, "", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "bad") })
	ctx = WithChainID(ctx, "kitty-chain")
	assert.Equal(t, "kitty-chain", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "other-chain") })
}

func TestBlockTime(t *testing.T) {
	now := time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)

	_, ok := BlockTime(context.Background())
	assert.False(t, ok)

	ctx := WithHeader(context.Background(), abci.Header{Time: now})
	got, ok := BlockTime(ctx)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	later := now.Add(time.Hour)
	got, _ = BlockTime(WithBlockTime(ctx, later))
	assert.Equal(t, later, got)

	unix, err := BlockUnixTime(ctx)
	assert.NoError(t, err)
	assert.Equal(t, AsUnixTime(now), unix)
}

func TestRandomness(t *testing.T) {
	ctx := context.Background()
	_, ok := GetRandomSeed(ctx)
	assert.False(t, ok)
	_, ok = GetTxIndex(ctx)
	assert.False(t, ok)

	ctx = WithRandomSeed(ctx, []byte("seed"))
	ctx = WithTxIndex(ctx, 3)
	seed, ok := GetRandomSeed(ctx)
	assert.True(t, ok)
	assert.Equal(t, []byte("seed"), seed)
	idx, ok := GetTxIndex(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint32(3), idx)
}
