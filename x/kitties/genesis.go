package kitties

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/gconf"
	"github.com/kittyverse/weft/x/cash"
)

const optKey = "kitties"

// GenesisKitty is a kitty declared in the genesis file. Ids are assigned in
// declaration order.
type GenesisKitty struct {
	DNA   DNA          `json:"dna"`
	Owner weft.Address `json:"owner,omitempty"`
}

// Initializer loads the configuration and the genesis kitties. It must run
// after the cash initializer so that owners can pay their deposits.
type Initializer struct {
	Reserver cash.Reserver
}

var _ weft.Initializer = Initializer{}

func (i Initializer) FromGenesis(ctx weft.Context, opts weft.Options, db weft.KVStore) error {
	switch err := gconf.InitConfig(db, opts, packageName, &Configuration{}); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return err
	}

	var kitties []GenesisKitty
	if err := opts.ReadOptions(optKey, &kitties); err != nil {
		return err
	}
	if len(kitties) == 0 {
		return nil
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	reserver := i.Reserver
	if reserver == nil {
		reserver = cash.NewController()
	}
	ctrl := NewController(NewKittyStore(), reserver)
	for n, g := range kitties {
		id, err := ctrl.store.NextID(db)
		if err != nil {
			return err
		}
		k := &Kitty{DNA: g.DNA}
		if len(g.Owner) != 0 {
			if err := g.Owner.Validate(); err != nil {
				return errors.Wrapf(err, "kitty %d owner", n)
			}
			if err := ctrl.hold(db, g.Owner, conf.Deposit, k); err != nil {
				return errors.Wrapf(err, "kitty %d", n)
			}
		}
		if err := ctrl.store.Put(db, id, k); err != nil {
			return errors.Wrapf(err, "kitty %d", n)
		}
	}
	return nil
}
