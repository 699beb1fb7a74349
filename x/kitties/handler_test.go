package kitties

import (
	"context"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/gconf"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest"
	"github.com/kittyverse/weft/wefttest/assert"
	"github.com/kittyverse/weft/x/cash"
)

// router is a minimal weft.Registry for the handler tests.
type router map[string]weft.Handler

func (r router) Handle(m weft.Msg, h weft.Handler) { r[m.Path()] = h }

// run checks the message against a throwaway cache and then delivers it.
func (r router) run(t *testing.T, ctx weft.Context, db weft.CacheableKVStore, msg weft.Msg) (*weft.DeliverResult, error) {
	t.Helper()
	h, ok := r[msg.Path()]
	if !ok {
		t.Fatalf("no handler for %s", msg.Path())
	}
	tx := &wefttest.Tx{Msg: msg}
	cache := db.CacheWrap()
	_, err := h.Check(ctx, cache, tx)
	cache.Discard()
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func TestSaleScenario(t *testing.T) {
	a := wefttest.NewCondition()
	b := wefttest.NewCondition()
	admin := wefttest.NewCondition()

	db := store.MemStore()
	dep := coin.NewCoin(1, 0, "KIT")
	assert.Nil(t, gconf.Save(db, packageName, &Configuration{Owner: admin.Address(), Deposit: dep}))
	cashCtrl := cash.NewController()
	assert.Nil(t, cashCtrl.IssueCoins(db, a.Address(), coin.NewCoin(10, 0, "KIT")))
	assert.Nil(t, cashCtrl.IssueCoins(db, b.Address(), coin.NewCoin(500, 0, "KIT")))

	auth := &wefttest.CtxAuth{Key: "signers"}
	r := make(router)
	RegisterRoutes(r, auth, NewController(NewKittyStore(), cashCtrl))

	base := weft.WithRandomSeed(context.Background(), []byte{1, 2, 3})
	var txIndex uint32
	run := func(signer weft.Condition, msg weft.Msg) (*weft.DeliverResult, error) {
		ctx := weft.WithTxIndex(auth.SetConditions(base, signer), txIndex)
		txIndex++
		return r.run(t, ctx, db, msg)
	}

	res, err := run(a, &CreateKittyMsg{})
	assert.Nil(t, err)
	assert.Equal(t, KittyID(1).Key(), res.Data)
	assert.Equal(t, "kitty_created", res.Events[0].Kind)

	count, err := NewKittyStore().Count(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), count)

	_, err = run(a, &AdoptKittyMsg{KittyID: 1})
	assert.Nil(t, err)
	_, err = run(a, &SetPriceMsg{KittyID: 1, Price: coin.NewCoinp(200, 0, "KIT")})
	assert.Nil(t, err)

	res, err = run(b, &BuyKittyMsg{KittyID: 1, MaxPayment: coin.NewCoinp(250, 0, "KIT")})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.Events))
	sold := res.Events[0]
	assert.Equal(t, "kitty_sold", sold.Kind)
	assert.Equal(t, "1", sold.Attr("kitty_id"))
	assert.Equal(t, a.Address().String(), sold.Attr("seller"))
	assert.Equal(t, b.Address().String(), sold.Attr("buyer"))
	assert.Equal(t, "200 KIT", sold.Attr("price"))

	aFree, err := cashCtrl.Balance(db, a.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(210, 0, "KIT"), aFree.Get("KIT"))
	aHeld, err := cashCtrl.Reserved(db, a.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, aHeld.IsEmpty())
	bHeld, err := cashCtrl.Reserved(db, b.Address())
	assert.Nil(t, err)
	assert.Equal(t, dep, bHeld.Get("KIT"))

	k, err := NewKittyStore().Get(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, OwnedBy{Address: b.Address()}, k.Ownership())
	assert.Equal(t, false, k.Listed())

	// Only the configuration owner can change the deposit.
	_, err = run(a, &UpdateConfigurationMsg{Patch: &Configuration{Deposit: coin.NewCoin(2, 0, "KIT")}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = run(admin, &UpdateConfigurationMsg{Patch: &Configuration{Deposit: coin.NewCoin(2, 0, "KIT")}})
	assert.Nil(t, err)
	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(2, 0, "KIT"), conf.Deposit)
}

func TestHandlerRequiresSigner(t *testing.T) {
	db := store.MemStore()
	h := newHandler(&wefttest.Auth{}, NewController(NewKittyStore(), cash.NewController()), kittyCost, create)
	ctx := weft.WithRandomSeed(context.Background(), []byte{1})
	tx := &wefttest.Tx{Msg: &CreateKittyMsg{}}

	_, err := h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	wrong := &wefttest.Tx{Msg: &AdoptKittyMsg{KittyID: 1}}
	h = newHandler(&wefttest.Auth{Signer: wefttest.NewCondition()}, NewController(NewKittyStore(), cash.NewController()), kittyCost, create)
	_, err = h.Deliver(ctx, db, wrong)
	assert.IsErr(t, errors.ErrType, err)
}
