package x_test

import (
	"context"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/wefttest"
	"github.com/kittyverse/weft/wefttest/assert"
	"github.com/kittyverse/weft/x"
)

func TestAuth(t *testing.T) {
	a := wefttest.NewCondition()
	b := wefttest.NewCondition()
	c := wefttest.NewCondition()

	ctx := context.Background()
	ctxAuth := &wefttest.CtxAuth{Key: "auth"}
	ctx = ctxAuth.SetConditions(ctx, b)

	cases := map[string]struct {
		auth     x.Authenticator
		wantMain weft.Condition
		has      []weft.Address
		hasNot   []weft.Address
	}{
		"nobody": {
			auth:   &wefttest.Auth{},
			hasNot: []weft.Address{a.Address()},
		},
		"single signer": {
			auth:     &wefttest.Auth{Signer: a},
			wantMain: a,
			has:      []weft.Address{a.Address()},
			hasNot:   []weft.Address{b.Address()},
		},
		"chained": {
			auth:     x.ChainAuth(&wefttest.Auth{Signers: []weft.Condition{a, c}}, ctxAuth),
			wantMain: a,
			has:      []weft.Address{a.Address(), b.Address(), c.Address()},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, x.MainSigner(ctx, tc.auth))
			assert.Equal(t, true, x.HasAllAddresses(ctx, tc.auth, tc.has))
			for _, addr := range tc.hasNot {
				assert.Equal(t, false, tc.auth.HasAddress(ctx, addr))
			}
		})
	}

	assert.Nil(t, x.AnySigner(ctx, &wefttest.Auth{}))
	assert.Equal(t, a.Address(), x.AnySigner(ctx, &wefttest.Auth{Signer: a}))
	assert.Equal(t, []weft.Address{b.Address()}, x.GetAddresses(ctx, ctxAuth))
}
