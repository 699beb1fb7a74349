package kitties

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/gconf"
)

const packageName = "kitties"

// Configuration is the chain wide setup of the kitties extension, stored
// with gconf.
type Configuration struct {
	// Owner can update the configuration.
	Owner weft.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/kittyverse/weft.Address" json:"owner"`
	// Deposit is held against the owner of every kitty.
	Deposit coin.Coin `protobuf:"bytes,2,opt,name=deposit,proto3" json:"deposit"`
	// OwnedOnCreate makes the creator the owner of a new kitty.
	OwnedOnCreate bool `protobuf:"varint,3,opt,name=owned_on_create,json=ownedOnCreate,proto3" json:"owned_on_create"`
	// RecordBirth stores the block time in new kitties.
	RecordBirth bool `protobuf:"varint,4,opt,name=record_birth,json=recordBirth,proto3" json:"record_birth"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) GetOwner() weft.Address {
	return c.Owner
}

func (c *Configuration) Validate() error {
	var err error
	err = errors.AppendField(err, "Owner", c.Owner.Validate())
	switch {
	case c.Deposit == coin.Coin{}:
		// No deposit at all.
	case !c.Deposit.IsNonNegative():
		err = errors.AppendField(err, "Deposit", errors.ErrAmount.New("negative"))
	default:
		err = errors.AppendField(err, "Deposit", c.Deposit.Validate())
	}
	return err
}

// loadConf returns the stored configuration. Without one, kitties are
// created unowned and no deposit is held.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{}, nil
	default:
		return nil, errors.Wrap(err, "kitties configuration")
	}
}
