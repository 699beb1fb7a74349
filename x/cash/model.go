package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/orm"
)

// Wallet holds the coins of a single account.
type Wallet struct {
	Coins coin.Coins `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Validate() error {
	if err := w.Coins.Validate(); err != nil {
		return errors.Wrap(err, "coins")
	}
	if !w.Coins.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	return nil
}

type walletView Wallet

func (m *walletView) Reset()         { *m = walletView{} }
func (m *walletView) String() string { return proto.CompactTextString(m) }
func (*walletView) ProtoMessage()    {}

func (w *Wallet) Marshal() ([]byte, error) {
	return codec.Marshal((*walletView)(w))
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*walletView)(w))
}

// NewWalletBucket returns the bucket of spendable balances.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("cash")
}

// NewReserveBucket returns the bucket of reserved balances.
func NewReserveBucket() orm.ModelBucket {
	return orm.NewModelBucket("reserve")
}
