package kittyd

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/crypto"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/x/cash"
	"github.com/kittyverse/weft/x/kitties"
	"github.com/kittyverse/weft/x/sigs"
)

// txWire is the sum of codec.proto. At most one message field is set.
type txWire struct {
	Signatures          []*sigs.StdSignature            `protobuf:"bytes,1,rep,name=signatures,proto3"`
	SendMsg             *cash.SendMsg                   `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3"`
	CreateMsg           *kitties.CreateKittyMsg         `protobuf:"bytes,60,opt,name=kitties_create_msg,json=kittiesCreateMsg,proto3"`
	TransferMsg         *kitties.TransferKittyMsg       `protobuf:"bytes,61,opt,name=kitties_transfer_msg,json=kittiesTransferMsg,proto3"`
	AdoptMsg            *kitties.AdoptKittyMsg          `protobuf:"bytes,62,opt,name=kitties_adopt_msg,json=kittiesAdoptMsg,proto3"`
	AbandonMsg          *kitties.AbandonKittyMsg        `protobuf:"bytes,63,opt,name=kitties_abandon_msg,json=kittiesAbandonMsg,proto3"`
	SetPriceMsg         *kitties.SetPriceMsg            `protobuf:"bytes,64,opt,name=kitties_set_price_msg,json=kittiesSetPriceMsg,proto3"`
	ClearPriceMsg       *kitties.ClearPriceMsg          `protobuf:"bytes,65,opt,name=kitties_clear_price_msg,json=kittiesClearPriceMsg,proto3"`
	BuyMsg              *kitties.BuyKittyMsg            `protobuf:"bytes,66,opt,name=kitties_buy_msg,json=kittiesBuyMsg,proto3"`
	BreedMsg            *kitties.BreedKittyMsg          `protobuf:"bytes,67,opt,name=kitties_breed_msg,json=kittiesBreedMsg,proto3"`
	UpdateConfiguration *kitties.UpdateConfigurationMsg `protobuf:"bytes,68,opt,name=kitties_update_configuration_msg,json=kittiesUpdateConfigurationMsg,proto3"`
}

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

// set places msg into its field of the sum.
func (m *txWire) set(msg weft.Msg) error {
	switch msg := msg.(type) {
	case nil:
	case *cash.SendMsg:
		m.SendMsg = msg
	case *kitties.CreateKittyMsg:
		m.CreateMsg = msg
	case *kitties.TransferKittyMsg:
		m.TransferMsg = msg
	case *kitties.AdoptKittyMsg:
		m.AdoptMsg = msg
	case *kitties.AbandonKittyMsg:
		m.AbandonMsg = msg
	case *kitties.SetPriceMsg:
		m.SetPriceMsg = msg
	case *kitties.ClearPriceMsg:
		m.ClearPriceMsg = msg
	case *kitties.BuyKittyMsg:
		m.BuyMsg = msg
	case *kitties.BreedKittyMsg:
		m.BreedMsg = msg
	case *kitties.UpdateConfigurationMsg:
		m.UpdateConfiguration = msg
	default:
		return errors.Wrapf(errors.ErrMsg, "unsupported message %T", msg)
	}
	return nil
}

// msg returns the only message field that is set, or nil.
func (m *txWire) msg() (weft.Msg, error) {
	var found []weft.Msg
	add := func(ok bool, msg weft.Msg) {
		if ok {
			found = append(found, msg)
		}
	}
	add(m.SendMsg != nil, m.SendMsg)
	add(m.CreateMsg != nil, m.CreateMsg)
	add(m.TransferMsg != nil, m.TransferMsg)
	add(m.AdoptMsg != nil, m.AdoptMsg)
	add(m.AbandonMsg != nil, m.AbandonMsg)
	add(m.SetPriceMsg != nil, m.SetPriceMsg)
	add(m.ClearPriceMsg != nil, m.ClearPriceMsg)
	add(m.BuyMsg != nil, m.BuyMsg)
	add(m.BreedMsg != nil, m.BreedMsg)
	add(m.UpdateConfiguration != nil, m.UpdateConfiguration)

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrap(errors.ErrMsg, "more than one message")
	}
}

// Tx is the transaction format of the kitty chain.
type Tx struct {
	Signatures []*sigs.StdSignature
	Msg        weft.Msg
}

var _ weft.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction carrying msg.
func NewTx(msg weft.Msg) *Tx {
	return &Tx{Msg: msg}
}

// TxDecoder parses a Tx.
func TxDecoder(raw []byte) (weft.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return tx, nil
}

func (tx *Tx) GetMsg() (weft.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	return tx.Msg, nil
}

func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes is the encoding of the message alone.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	var w txWire
	if err := w.set(tx.Msg); err != nil {
		return nil, err
	}
	return codec.Marshal(&w)
}

// Sign appends the signature of signer for the given sequence.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	w := txWire{Signatures: tx.Signatures}
	if err := w.set(tx.Msg); err != nil {
		return nil, err
	}
	return codec.Marshal(&w)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	var w txWire
	if err := codec.Unmarshal(raw, &w); err != nil {
		return err
	}
	msg, err := w.msg()
	if err != nil {
		return err
	}
	*tx = Tx{Signatures: w.Signatures, Msg: msg}
	return nil
}
