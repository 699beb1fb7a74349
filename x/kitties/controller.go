package kitties

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/x/cash"
)

// Controller implements the kitty lifecycle. Every operation checks all
// its preconditions before writing anything and returns the event
// describing the change.
type Controller struct {
	store Store
	cash  cash.Reserver
	mixer Mixer
}

func NewController(store Store, reserver cash.Reserver) *Controller {
	return &Controller{store: store, cash: reserver}
}

// Create makes a new kitty with random DNA. Under the owned_on_create
// configuration the caller becomes its owner.
func (c *Controller) Create(ctx weft.Context, db weft.KVStore, caller weft.Address) (KittyID, *weft.Event, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, nil, err
	}
	dna, err := c.mixer.Derive(ctx, caller)
	if err != nil {
		return 0, nil, err
	}
	k := &Kitty{DNA: dna}
	if conf.RecordBirth {
		if k.BornAt, err = weft.BlockUnixTime(ctx); err != nil {
			return 0, nil, err
		}
	}
	if conf.OwnedOnCreate {
		if err := c.canHold(db, caller, conf.Deposit); err != nil {
			return 0, nil, err
		}
	}

	id, err := c.store.NextID(db)
	if err != nil {
		return 0, nil, err
	}
	if conf.OwnedOnCreate {
		if err := c.hold(db, caller, conf.Deposit, k); err != nil {
			return 0, nil, err
		}
	}
	if err := c.store.Put(db, id, k); err != nil {
		return 0, nil, err
	}
	ev := weft.NewEvent("kitty_created", "kitty_id", id, "creator", caller, "dna", k.DNA)
	if len(k.Owner) != 0 {
		ev.Attributes = append(ev.Attributes, &weft.Attribute{Key: "owner", Value: k.Owner.String()})
	}
	return id, ev, nil
}

// Transfer gives the kitty to another account. The deposit moves with it
// and any listing is cancelled.
func (c *Controller) Transfer(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID, to weft.Address) (*weft.Event, error) {
	if err := to.Validate(); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}
	k, err := c.owned(db, caller, id)
	if err != nil {
		return nil, err
	}
	if !to.Equals(caller) {
		conf, err := loadConf(db)
		if err != nil {
			return nil, err
		}
		if err := c.canHold(db, to, conf.Deposit); err != nil {
			return nil, errors.Wrap(err, "recipient deposit")
		}
		if err := c.release(db, k); err != nil {
			return nil, err
		}
		if err := c.hold(db, to, conf.Deposit, k); err != nil {
			return nil, err
		}
	}
	k.Owner = to
	k.Price = nil
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_transferred", "kitty_id", id, "from", caller, "to", to), nil
}

// Adopt makes the caller the owner of an unowned kitty.
func (c *Controller) Adopt(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID) (*weft.Event, error) {
	k, err := c.store.Get(db, id)
	if err != nil {
		return nil, err
	}
	if owner, ok := k.Ownership().(OwnedBy); ok {
		return nil, errors.Wrapf(ErrAlreadyOwned, "kitty %d owned by %s", id, owner.Address)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := c.hold(db, caller, conf.Deposit, k); err != nil {
		return nil, err
	}
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_adopted", "kitty_id", id, "owner", caller), nil
}

// Abandon releases the kitty and its deposit.
func (c *Controller) Abandon(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID) (*weft.Event, error) {
	k, err := c.owned(db, caller, id)
	if err != nil {
		return nil, err
	}
	if err := c.release(db, k); err != nil {
		return nil, err
	}
	k.Owner = nil
	k.Price = nil
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_abandoned", "kitty_id", id, "owner", caller), nil
}

// SetPrice lists the kitty for sale.
func (c *Controller) SetPrice(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID, price coin.Coin) (*weft.Event, error) {
	k, err := c.owned(db, caller, id)
	if err != nil {
		return nil, err
	}
	if err := price.Validate(); err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if !price.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	k.Price = &price
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_price_set", "kitty_id", id, "owner", caller, "price", price), nil
}

// ClearPrice cancels the listing.
func (c *Controller) ClearPrice(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID) (*weft.Event, error) {
	k, err := c.owned(db, caller, id)
	if err != nil {
		return nil, err
	}
	k.Price = nil
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_price_cleared", "kitty_id", id, "owner", caller), nil
}

// Buy pays the listed price to the owner and takes over the kitty. The
// buyer is charged the price, not maxPayment.
func (c *Controller) Buy(ctx weft.Context, db weft.KVStore, caller weft.Address, id KittyID, maxPayment coin.Coin) (*weft.Event, error) {
	k, err := c.store.Get(db, id)
	if err != nil {
		return nil, err
	}
	seller, ok := k.Ownership().(OwnedBy)
	if !ok {
		return nil, errors.Wrapf(ErrNoOwnerToBuyFrom, "kitty %d", id)
	}
	if !k.Listed() {
		return nil, errors.Wrapf(ErrNotForSale, "kitty %d", id)
	}
	price := *k.Price
	if !maxPayment.IsGTE(price) {
		return nil, errors.Wrapf(ErrInsufficientPayment, "price is %s, offered %s", price, maxPayment)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	selfBuy := seller.Address.Equals(caller)
	if !selfBuy {
		needed := coin.Coins{&price}
		if (conf.Deposit != coin.Coin{}) {
			if needed, err = needed.Add(conf.Deposit); err != nil {
				return nil, err
			}
		}
		balance, err := c.cash.Balance(db, caller)
		if err != nil {
			return nil, err
		}
		for _, n := range needed {
			if !balance.Contains(*n) {
				return nil, errors.Wrapf(errors.ErrInsufficientAmount, "buyer needs %s", needed)
			}
		}

		if err := c.cash.MoveCoins(db, caller, seller.Address, price); err != nil {
			return nil, errors.Wrap(err, "payment")
		}
		if err := c.release(db, k); err != nil {
			return nil, err
		}
		if err := c.hold(db, caller, conf.Deposit, k); err != nil {
			return nil, err
		}
	}
	k.Owner = caller
	k.Price = nil
	if err := c.store.Put(db, id, k); err != nil {
		return nil, err
	}
	return weft.NewEvent("kitty_sold",
		"kitty_id", id,
		"seller", seller.Address,
		"buyer", caller,
		"price", price,
	), nil
}

// Breed creates an unowned kitty from two kitties of different genders.
// The parents do not need to be owned by the caller.
func (c *Controller) Breed(ctx weft.Context, db weft.KVStore, caller weft.Address, idA, idB KittyID) (KittyID, *weft.Event, error) {
	a, err := c.store.Get(db, idA)
	if err != nil {
		return 0, nil, err
	}
	b, err := c.store.Get(db, idB)
	if err != nil {
		return 0, nil, err
	}
	if idA == idB || a.Gender() == b.Gender() {
		return 0, nil, errors.Wrapf(ErrSameGenderBreeding, "both kitties are %s", a.Gender())
	}
	conf, err := loadConf(db)
	if err != nil {
		return 0, nil, err
	}
	selector, err := c.mixer.Derive(ctx, caller)
	if err != nil {
		return 0, nil, err
	}
	child := &Kitty{
		DNA:     mixDNA(selector, a.DNA, b.DNA),
		ParentA: idA,
		ParentB: idB,
	}
	if conf.RecordBirth {
		if child.BornAt, err = weft.BlockUnixTime(ctx); err != nil {
			return 0, nil, err
		}
	}

	id, err := c.store.NextID(db)
	if err != nil {
		return 0, nil, err
	}
	if err := c.store.Put(db, id, child); err != nil {
		return 0, nil, err
	}
	ev := weft.NewEvent("kitty_born",
		"kitty_id", id,
		"parent_a", idA,
		"parent_b", idB,
		"dna", child.DNA,
	)
	return id, ev, nil
}

// owned returns the kitty if the caller owns it.
func (c *Controller) owned(db weft.ReadOnlyKVStore, caller weft.Address, id KittyID) (*Kitty, error) {
	k, err := c.store.Get(db, id)
	if err != nil {
		return nil, err
	}
	switch o := k.Ownership().(type) {
	case OwnedBy:
		if o.Address.Equals(caller) {
			return k, nil
		}
		return nil, errors.Wrapf(ErrNotOwner, "kitty %d owned by %s", id, o.Address)
	case Unowned:
		return nil, errors.Wrapf(ErrNotOwner, "kitty %d is unowned", id)
	default:
		return nil, errors.Wrapf(errors.ErrState, "unknown ownership %T", o)
	}
}

// canHold fails unless owner can afford the deposit.
func (c *Controller) canHold(db weft.ReadOnlyKVStore, owner weft.Address, deposit coin.Coin) error {
	if deposit.IsZero() {
		return nil
	}
	balance, err := c.cash.Balance(db, owner)
	if err != nil {
		return err
	}
	if !balance.Contains(deposit) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "deposit of %s", deposit)
	}
	return nil
}

// hold reserves the deposit from owner and makes owner the kitty owner.
func (c *Controller) hold(db weft.KVStore, owner weft.Address, deposit coin.Coin, k *Kitty) error {
	k.Owner = owner
	k.Deposit = nil
	if deposit.IsZero() {
		return nil
	}
	if err := c.cash.Reserve(db, owner, deposit); err != nil {
		return errors.Wrap(err, "deposit")
	}
	k.Deposit = &deposit
	return nil
}

// release gives the deposit held for the kitty back to its owner.
func (c *Controller) release(db weft.KVStore, k *Kitty) error {
	if k.Deposit == nil {
		return nil
	}
	if err := c.cash.Unreserve(db, k.Owner, *k.Deposit); err != nil {
		return errors.Wrap(err, "release deposit")
	}
	k.Deposit = nil
	return nil
}
