package kitties

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/coin"
)

// Wire views of the types declared in codec.proto. Kitty keeps its dna in
// an array, so it is copied into kittyWire instead of converted.

type kittyWire struct {
	Dna     []byte        `protobuf:"bytes,1,opt,name=dna,proto3"`
	Owner   weft.Address  `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/kittyverse/weft.Address"`
	Price   *coin.Coin    `protobuf:"bytes,3,opt,name=price,proto3"`
	BornAt  weft.UnixTime `protobuf:"varint,4,opt,name=born_at,json=bornAt,proto3,casttype=github.com/kittyverse/weft.UnixTime"`
	ParentA KittyID       `protobuf:"varint,5,opt,name=parent_a,json=parentA,proto3,casttype=KittyID"`
	ParentB KittyID       `protobuf:"varint,6,opt,name=parent_b,json=parentB,proto3,casttype=KittyID"`
	Deposit *coin.Coin    `protobuf:"bytes,7,opt,name=deposit,proto3"`
}

func (m *kittyWire) Reset()         { *m = kittyWire{} }
func (m *kittyWire) String() string { return proto.CompactTextString(m) }
func (*kittyWire) ProtoMessage()    {}

func (k *Kitty) Marshal() ([]byte, error) {
	return codec.Marshal(&kittyWire{
		Dna:     k.DNA[:],
		Owner:   k.Owner,
		Price:   k.Price,
		BornAt:  k.BornAt,
		ParentA: k.ParentA,
		ParentB: k.ParentB,
		Deposit: k.Deposit,
	})
}

func (k *Kitty) Unmarshal(raw []byte) error {
	var w kittyWire
	if err := codec.Unmarshal(raw, &w); err != nil {
		return err
	}
	*k = Kitty{
		Owner:   w.Owner,
		Price:   w.Price,
		BornAt:  w.BornAt,
		ParentA: w.ParentA,
		ParentB: w.ParentB,
		Deposit: w.Deposit,
	}
	return k.DNA.set(w.Dna)
}

type (
	configurationView          Configuration
	createKittyMsgView         CreateKittyMsg
	transferKittyMsgView       TransferKittyMsg
	adoptKittyMsgView          AdoptKittyMsg
	abandonKittyMsgView        AbandonKittyMsg
	setPriceMsgView            SetPriceMsg
	clearPriceMsgView          ClearPriceMsg
	buyKittyMsgView            BuyKittyMsg
	breedKittyMsgView          BreedKittyMsg
	updateConfigurationMsgView UpdateConfigurationMsg
)

func (m *configurationView) Reset()         { *m = configurationView{} }
func (m *configurationView) String() string { return proto.CompactTextString(m) }
func (*configurationView) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal((*configurationView)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*configurationView)(c))
}

func (m *createKittyMsgView) Reset()         { *m = createKittyMsgView{} }
func (m *createKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*createKittyMsgView) ProtoMessage()    {}

func (m *CreateKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*createKittyMsgView)(m))
}

func (m *CreateKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*createKittyMsgView)(m))
}

func (m *transferKittyMsgView) Reset()         { *m = transferKittyMsgView{} }
func (m *transferKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*transferKittyMsgView) ProtoMessage()    {}

func (m *TransferKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*transferKittyMsgView)(m))
}

func (m *TransferKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*transferKittyMsgView)(m))
}

func (m *adoptKittyMsgView) Reset()         { *m = adoptKittyMsgView{} }
func (m *adoptKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*adoptKittyMsgView) ProtoMessage()    {}

func (m *AdoptKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*adoptKittyMsgView)(m))
}

func (m *AdoptKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*adoptKittyMsgView)(m))
}

func (m *abandonKittyMsgView) Reset()         { *m = abandonKittyMsgView{} }
func (m *abandonKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*abandonKittyMsgView) ProtoMessage()    {}

func (m *AbandonKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*abandonKittyMsgView)(m))
}

func (m *AbandonKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*abandonKittyMsgView)(m))
}

func (m *setPriceMsgView) Reset()         { *m = setPriceMsgView{} }
func (m *setPriceMsgView) String() string { return proto.CompactTextString(m) }
func (*setPriceMsgView) ProtoMessage()    {}

func (m *SetPriceMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*setPriceMsgView)(m))
}

func (m *SetPriceMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*setPriceMsgView)(m))
}

func (m *clearPriceMsgView) Reset()         { *m = clearPriceMsgView{} }
func (m *clearPriceMsgView) String() string { return proto.CompactTextString(m) }
func (*clearPriceMsgView) ProtoMessage()    {}

func (m *ClearPriceMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*clearPriceMsgView)(m))
}

func (m *ClearPriceMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*clearPriceMsgView)(m))
}

func (m *buyKittyMsgView) Reset()         { *m = buyKittyMsgView{} }
func (m *buyKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*buyKittyMsgView) ProtoMessage()    {}

func (m *BuyKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*buyKittyMsgView)(m))
}

func (m *BuyKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*buyKittyMsgView)(m))
}

func (m *breedKittyMsgView) Reset()         { *m = breedKittyMsgView{} }
func (m *breedKittyMsgView) String() string { return proto.CompactTextString(m) }
func (*breedKittyMsgView) ProtoMessage()    {}

func (m *BreedKittyMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*breedKittyMsgView)(m))
}

func (m *BreedKittyMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*breedKittyMsgView)(m))
}

func (m *updateConfigurationMsgView) Reset()         { *m = updateConfigurationMsgView{} }
func (m *updateConfigurationMsgView) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgView) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*updateConfigurationMsgView)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*updateConfigurationMsgView)(m))
}
