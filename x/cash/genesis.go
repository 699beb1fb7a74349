package cash

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
)

const optKey = "cash"

// GenesisAccount is a funded account declared in the genesis file.
type GenesisAccount struct {
	Address weft.Address `json:"address"`
	Coins   []coin.Coin  `json:"coins"`
}

// Initializer funds the genesis accounts.
type Initializer struct{}

var _ weft.Initializer = Initializer{}

func (Initializer) FromGenesis(ctx weft.Context, opts weft.Options, db weft.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		for _, c := range a.Coins {
			if !c.IsPositive() {
				return errors.Wrapf(errors.ErrAmount, "account %d: %s", i, c)
			}
			if err := ctrl.IssueCoins(db, a.Address, c); err != nil {
				return errors.Wrapf(err, "account %d", i)
			}
		}
	}
	return nil
}
