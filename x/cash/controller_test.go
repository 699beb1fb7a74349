package cash

import (
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest/assert"
)

func TestMoveCoins(t *testing.T) {
	alice := weft.NewAddress([]byte("alice"))
	bob := weft.NewAddress([]byte("bob"))

	cases := map[string]struct {
		Fund      coin.Coin
		Amount    coin.Coin
		WantErr   *errors.Error
		WantAlice coin.Coins
		WantBob   coin.Coins
	}{
		"partial transfer": {
			Fund:      coin.NewCoin(10, 0, "KIT"),
			Amount:    coin.NewCoin(3, 500000000, "KIT"),
			WantAlice: coin.Coins{coin.NewCoinp(6, 500000000, "KIT")},
			WantBob:   coin.Coins{coin.NewCoinp(3, 500000000, "KIT")},
		},
		"whole balance removes the wallet": {
			Fund:    coin.NewCoin(10, 0, "KIT"),
			Amount:  coin.NewCoin(10, 0, "KIT"),
			WantBob: coin.Coins{coin.NewCoinp(10, 0, "KIT")},
		},
		"insufficient funds": {
			Fund:      coin.NewCoin(1, 0, "KIT"),
			Amount:    coin.NewCoin(2, 0, "KIT"),
			WantErr:   errors.ErrInsufficientAmount,
			WantAlice: coin.Coins{coin.NewCoinp(1, 0, "KIT")},
		},
		"other currency": {
			Fund:      coin.NewCoin(5, 0, "KIT"),
			Amount:    coin.NewCoin(1, 0, "ETH"),
			WantErr:   errors.ErrInsufficientAmount,
			WantAlice: coin.Coins{coin.NewCoinp(5, 0, "KIT")},
		},
		"zero amount": {
			Fund:      coin.NewCoin(5, 0, "KIT"),
			Amount:    coin.NewCoin(0, 0, "KIT"),
			WantErr:   errors.ErrAmount,
			WantAlice: coin.Coins{coin.NewCoinp(5, 0, "KIT")},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.IssueCoins(db, alice, tc.Fund))

			err := ctrl.MoveCoins(db, alice, bob, tc.Amount)
			assert.IsErr(t, tc.WantErr, err)

			got, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, true, tc.WantAlice.Equals(got))
			got, err = ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, true, tc.WantBob.Equals(got))
		})
	}
}

func TestIssueNegativeBurns(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := weft.NewAddress([]byte("alice"))

	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(5, 0, "KIT")))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(-2, 0, "KIT")))
	got, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, true, coin.Coins{coin.NewCoinp(3, 0, "KIT")}.Equals(got))

	err = ctrl.IssueCoins(db, addr, coin.NewCoin(-4, 0, "KIT"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
}

func TestReservations(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weft.NewAddress([]byte("alice"))
	bob := weft.NewAddress([]byte("bob"))
	deposit := coin.NewCoin(1, 0, "KIT")

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(2, 0, "KIT")))

	assert.Nil(t, ctrl.Reserve(db, alice, deposit))
	assert.Nil(t, ctrl.Reserve(db, alice, deposit))
	assert.IsErr(t, errors.ErrInsufficientAmount, ctrl.Reserve(db, alice, deposit))

	// Held funds cannot be spent.
	assert.IsErr(t, errors.ErrInsufficientAmount, ctrl.MoveCoins(db, alice, bob, deposit))

	reserved, err := ctrl.Reserved(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, true, coin.Coins{coin.NewCoinp(2, 0, "KIT")}.Equals(reserved))

	assert.Nil(t, ctrl.MoveReserved(db, alice, bob, deposit))
	reserved, err = ctrl.Reserved(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, true, coin.Coins{coin.NewCoinp(1, 0, "KIT")}.Equals(reserved))

	assert.Nil(t, ctrl.Unreserve(db, bob, deposit))
	assert.IsErr(t, errors.ErrInsufficientAmount, ctrl.Unreserve(db, bob, deposit))
	balance, err := ctrl.Balance(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, true, coin.Coins{coin.NewCoinp(1, 0, "KIT")}.Equals(balance))

	// A zero deposit is a no-op.
	assert.Nil(t, ctrl.Reserve(db, bob, coin.NewCoin(0, 0, "KIT")))
	assert.Nil(t, ctrl.Unreserve(db, bob, coin.NewCoin(0, 0, "KIT")))

	assert.IsErr(t, errors.ErrAmount, ctrl.Reserve(db, bob, coin.NewCoin(-1, 0, "KIT")))
}
