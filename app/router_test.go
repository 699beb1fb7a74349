package app

import (
	"context"
	"testing"

	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	good := &wefttest.Handler{}
	bad := &wefttest.Handler{DeliverErr: errors.ErrState}
	r.Handle(&wefttest.Msg{RoutePath: "test/good"}, good)
	r.Handle(&wefttest.Msg{RoutePath: "test/bad"}, bad)

	assert.Panics(t, func() { r.Handle(&wefttest.Msg{RoutePath: "test/good"}, good) })
	assert.Panics(t, func() { r.Handle(&wefttest.Msg{RoutePath: "kitties:7"}, good) })
	assert.Panics(t, func() { r.Handle(&wefttest.Msg{RoutePath: "nopath"}, good) })

	ctx := context.Background()
	db := store.MemStore()
	tx := func(path string) *wefttest.Tx {
		return &wefttest.Tx{Msg: &wefttest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, db, tx("test/good"))
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx("test/good"))
	require.NoError(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = r.Deliver(ctx, db, tx("test/bad"))
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, 1, bad.DeliverCallCount())

	_, err = r.Deliver(ctx, db, tx("test/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, db, &wefttest.Tx{})
	assert.True(t, errors.ErrMsg.Is(err))
	_, err = r.Check(ctx, db, &wefttest.Tx{Err: errors.ErrInput})
	assert.True(t, errors.ErrInput.Is(err))
}
