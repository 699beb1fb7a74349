package kitties

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
)

const (
	pathCreate       = "kitties/create"
	pathTransfer     = "kitties/transfer"
	pathAdopt        = "kitties/adopt"
	pathAbandon      = "kitties/abandon"
	pathSetPrice     = "kitties/set_price"
	pathClearPrice   = "kitties/clear_price"
	pathBuy          = "kitties/buy"
	pathBreed        = "kitties/breed"
	pathUpdateConfig = "kitties/update_configuration"
)

var (
	_ weft.Msg = (*CreateKittyMsg)(nil)
	_ weft.Msg = (*TransferKittyMsg)(nil)
	_ weft.Msg = (*AdoptKittyMsg)(nil)
	_ weft.Msg = (*AbandonKittyMsg)(nil)
	_ weft.Msg = (*SetPriceMsg)(nil)
	_ weft.Msg = (*ClearPriceMsg)(nil)
	_ weft.Msg = (*BuyKittyMsg)(nil)
	_ weft.Msg = (*BreedKittyMsg)(nil)
	_ weft.Msg = (*UpdateConfigurationMsg)(nil)
)

func validID(field string, id KittyID) error {
	if id == 0 {
		return errors.Field(field, errors.ErrEmpty, "kitty id required")
	}
	return nil
}

// CreateKittyMsg creates a kitty on behalf of the signer.
type CreateKittyMsg struct{}

func (CreateKittyMsg) Path() string     { return pathCreate }
func (*CreateKittyMsg) Validate() error { return nil }

// TransferKittyMsg gives a kitty of the signer to Destination.
type TransferKittyMsg struct {
	KittyID     KittyID      `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
	Destination weft.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/kittyverse/weft.Address" json:"destination"`
}

func (TransferKittyMsg) Path() string { return pathTransfer }

func (m *TransferKittyMsg) Validate() error {
	err := validID("KittyID", m.KittyID)
	return errors.Append(err, errors.Field("Destination", m.Destination.Validate(), "invalid"))
}

// AdoptKittyMsg makes the signer the owner of an unowned kitty.
type AdoptKittyMsg struct {
	KittyID KittyID `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
}

func (AdoptKittyMsg) Path() string       { return pathAdopt }
func (m *AdoptKittyMsg) Validate() error { return validID("KittyID", m.KittyID) }

// AbandonKittyMsg releases a kitty of the signer.
type AbandonKittyMsg struct {
	KittyID KittyID `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
}

func (AbandonKittyMsg) Path() string       { return pathAbandon }
func (m *AbandonKittyMsg) Validate() error { return validID("KittyID", m.KittyID) }

// SetPriceMsg lists a kitty of the signer for sale.
type SetPriceMsg struct {
	KittyID KittyID    `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
	Price   *coin.Coin `protobuf:"bytes,2,opt,name=price,proto3" json:"price"`
}

func (SetPriceMsg) Path() string { return pathSetPrice }

func (m *SetPriceMsg) Validate() error {
	err := validID("KittyID", m.KittyID)
	switch {
	case m.Price == nil:
		err = errors.AppendField(err, "Price", errors.ErrEmpty)
	case !m.Price.IsPositive():
		err = errors.AppendField(err, "Price", errors.ErrAmount.New("must be positive"))
	default:
		err = errors.AppendField(err, "Price", m.Price.Validate())
	}
	return err
}

// ClearPriceMsg cancels the listing of a kitty of the signer.
type ClearPriceMsg struct {
	KittyID KittyID `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
}

func (ClearPriceMsg) Path() string       { return pathClearPrice }
func (m *ClearPriceMsg) Validate() error { return validID("KittyID", m.KittyID) }

// BuyKittyMsg buys a listed kitty, paying at most MaxPayment.
type BuyKittyMsg struct {
	KittyID    KittyID    `protobuf:"varint,1,opt,name=kitty_id,json=kittyId,proto3,casttype=KittyID" json:"kitty_id"`
	MaxPayment *coin.Coin `protobuf:"bytes,2,opt,name=max_payment,json=maxPayment,proto3" json:"max_payment"`
}

func (BuyKittyMsg) Path() string { return pathBuy }

func (m *BuyKittyMsg) Validate() error {
	err := validID("KittyID", m.KittyID)
	switch {
	case m.MaxPayment == nil:
		err = errors.AppendField(err, "MaxPayment", errors.ErrEmpty)
	case !m.MaxPayment.IsPositive():
		err = errors.AppendField(err, "MaxPayment", errors.ErrAmount.New("must be positive"))
	default:
		err = errors.AppendField(err, "MaxPayment", m.MaxPayment.Validate())
	}
	return err
}

// BreedKittyMsg breeds two kitties into a new unowned one.
type BreedKittyMsg struct {
	KittyIDA KittyID `protobuf:"varint,1,opt,name=kitty_id_a,json=kittyIdA,proto3,casttype=KittyID" json:"kitty_id_a"`
	KittyIDB KittyID `protobuf:"varint,2,opt,name=kitty_id_b,json=kittyIdB,proto3,casttype=KittyID" json:"kitty_id_b"`
}

func (BreedKittyMsg) Path() string { return pathBreed }

func (m *BreedKittyMsg) Validate() error {
	return errors.Append(validID("KittyIDA", m.KittyIDA), validID("KittyIDB", m.KittyIDB))
}

// UpdateConfigurationMsg changes the non zero fields of the configuration.
type UpdateConfigurationMsg struct {
	Patch *Configuration `protobuf:"bytes,1,opt,name=patch,proto3" json:"patch"`
}

func (UpdateConfigurationMsg) Path() string { return pathUpdateConfig }

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	var err error
	if len(m.Patch.Owner) != 0 {
		err = errors.AppendField(err, "Patch.Owner", m.Patch.Owner.Validate())
	}
	if d := m.Patch.Deposit; (d != coin.Coin{}) {
		err = errors.AppendField(err, "Patch.Deposit", d.Validate())
		if !d.IsPositive() {
			err = errors.AppendField(err, "Patch.Deposit", errors.ErrAmount.New("must be positive"))
		}
	}
	return err
}
