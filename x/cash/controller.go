package cash

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/orm"
)

// Controller moves funds between accounts.
type Controller interface {
	Balance(db weft.ReadOnlyKVStore, owner weft.Address) (coin.Coins, error)
	MoveCoins(db weft.KVStore, src, dest weft.Address, amount coin.Coin) error
	IssueCoins(db weft.KVStore, dest weft.Address, amount coin.Coin) error
}

// Reserver holds funds of an account so that they cannot be spent.
type Reserver interface {
	Controller

	// Reserved returns the held funds of owner.
	Reserved(db weft.ReadOnlyKVStore, owner weft.Address) (coin.Coins, error)

	// Reserve holds amount of the spendable funds of owner. It fails with
	// ErrInsufficientAmount if owner cannot afford it.
	Reserve(db weft.KVStore, owner weft.Address, amount coin.Coin) error

	// Unreserve releases amount of the held funds of owner back to the
	// spendable balance.
	Unreserve(db weft.KVStore, owner weft.Address, amount coin.Coin) error

	// MoveReserved moves held funds of src to the held funds of dest.
	MoveReserved(db weft.KVStore, src, dest weft.Address, amount coin.Coin) error
}

// BaseController implements Reserver on top of the wallet and reserve
// buckets.
type BaseController struct {
	wallets  orm.ModelBucket
	reserves orm.ModelBucket
}

var _ Reserver = BaseController{}

func NewController() BaseController {
	return BaseController{
		wallets:  NewWalletBucket(),
		reserves: NewReserveBucket(),
	}
}

func (c BaseController) Balance(db weft.ReadOnlyKVStore, owner weft.Address) (coin.Coins, error) {
	return load(db, c.wallets, owner)
}

func (c BaseController) Reserved(db weft.ReadOnlyKVStore, owner weft.Address) (coin.Coins, error) {
	return load(db, c.reserves, owner)
}

func (c BaseController) MoveCoins(db weft.KVStore, src, dest weft.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot move %s", amount)
	}
	if err := take(db, c.wallets, src, amount); err != nil {
		return err
	}
	return give(db, c.wallets, dest, amount)
}

// IssueCoins adds amount to the balance of dest. A negative amount burns
// funds.
func (c BaseController) IssueCoins(db weft.KVStore, dest weft.Address, amount coin.Coin) error {
	if amount.IsNonNegative() {
		return give(db, c.wallets, dest, amount)
	}
	return take(db, c.wallets, dest, amount.Negative())
}

func (c BaseController) Reserve(db weft.KVStore, owner weft.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot reserve %s", amount)
	}
	if err := take(db, c.wallets, owner, amount); err != nil {
		return err
	}
	return give(db, c.reserves, owner, amount)
}

func (c BaseController) Unreserve(db weft.KVStore, owner weft.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot unreserve %s", amount)
	}
	if err := take(db, c.reserves, owner, amount); err != nil {
		return errors.Wrap(err, "reserved")
	}
	return give(db, c.wallets, owner, amount)
}

func (c BaseController) MoveReserved(db weft.KVStore, src, dest weft.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot move reserved %s", amount)
	}
	if err := take(db, c.reserves, src, amount); err != nil {
		return errors.Wrap(err, "reserved")
	}
	return give(db, c.reserves, dest, amount)
}

func load(db weft.ReadOnlyKVStore, b orm.ModelBucket, owner weft.Address) (coin.Coins, error) {
	var w Wallet
	switch err := b.One(db, owner, &w); {
	case err == nil:
		return w.Coins, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

func take(db weft.KVStore, b orm.ModelBucket, owner weft.Address, amount coin.Coin) error {
	coins, err := load(db, b, owner)
	if err != nil {
		return err
	}
	if !coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s has %s, needs %s", owner, coins.Get(amount.Ticker), amount)
	}
	if coins, err = coins.Subtract(amount); err != nil {
		return err
	}
	return save(db, b, owner, coins)
}

func give(db weft.KVStore, b orm.ModelBucket, owner weft.Address, amount coin.Coin) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	coins, err := load(db, b, owner)
	if err != nil {
		return err
	}
	if coins, err = coins.Add(amount); err != nil {
		return err
	}
	return save(db, b, owner, coins)
}

func save(db weft.KVStore, b orm.ModelBucket, owner weft.Address, coins coin.Coins) error {
	if coins.IsEmpty() {
		if err := b.Delete(db, owner); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return b.Put(db, owner, &Wallet{Coins: coins})
}
