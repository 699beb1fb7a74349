package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest"
	"github.com/kittyverse/weft/wefttest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	h := wefttest.PanicHandler{Msg: "boom"}
	r := NewRecovery()
	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &wefttest.Tx{}, h)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = r.Deliver(ctx, db, &wefttest.Tx{}, h)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestSavepoint(t *testing.T) {
	key, val := []byte("kitties:1"), []byte("tom")

	cases := map[string]struct {
		decorator weft.Decorator
		handler   *wefttest.Handler
		check     bool
		wantErr   *errors.Error
		wantValue []byte
	}{
		"deliver success keeps writes": {
			decorator: NewSavepoint().OnDeliver(),
			handler:   &wefttest.Handler{Key: key, Value: val},
			wantValue: val,
		},
		"deliver failure drops writes": {
			decorator: NewSavepoint().OnDeliver(),
			handler:   &wefttest.Handler{Key: key, Value: val, DeliverErr: errors.ErrNotFound},
			wantErr:   errors.ErrNotFound,
		},
		"disabled savepoint keeps failed writes": {
			decorator: NewSavepoint().OnCheck(),
			handler:   &wefttest.Handler{Key: key, Value: val, DeliverErr: errors.ErrNotFound},
			wantErr:   errors.ErrNotFound,
			wantValue: val,
		},
		"check failure drops writes": {
			decorator: NewSavepoint().OnCheck(),
			handler:   &wefttest.Handler{Key: key, Value: val, CheckErr: errors.ErrState},
			check:     true,
			wantErr:   errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctx := context.Background()
			var err error
			if tc.check {
				_, err = tc.decorator.Check(ctx, db, &wefttest.Tx{}, tc.handler)
			} else {
				_, err = tc.decorator.Deliver(ctx, db, &wefttest.Tx{}, tc.handler)
			}
			assert.IsErr(t, tc.wantErr, err)
			got, err := db.Get(key)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantValue, got)
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := weft.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	tx := &wefttest.Tx{Msg: &wefttest.Msg{RoutePath: "kitties/adopt"}}
	db := store.MemStore()

	ok := &wefttest.Handler{DeliverResult: weft.DeliverResult{Events: []*weft.Event{weft.NewEvent("kitty_adopted")}}}
	_, err := NewLogging().Deliver(ctx, db, tx, ok)
	assert.Nil(t, err)
	assert.Equal(t, true, strings.Contains(buf.String(), "path=kitties/adopt"))
	assert.Equal(t, true, strings.Contains(buf.String(), "events=1"))

	buf.Reset()
	bad := &wefttest.Handler{CheckErr: errors.ErrUnauthorized}
	_, err = NewLogging().Check(ctx, db, tx, bad)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, true, strings.Contains(buf.String(), "check failed"))
}
