package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
)

const maxMemoSize = 128

// SendMsg moves Amount from Source to Destination.
type SendMsg struct {
	Source      weft.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/kittyverse/weft.Address" json:"source"`
	Destination weft.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/kittyverse/weft.Address" json:"destination"`
	Amount      *coin.Coin   `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount"`
	Memo        string       `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ weft.Msg = (*SendMsg)(nil)

func (SendMsg) Path() string {
	return "cash/send"
}

func (m *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.AppendField(err, "Amount", errors.ErrAmount.New("must be positive"))
	} else {
		err = errors.AppendField(err, "Amount", m.Amount.Validate())
	}
	err = errors.AppendField(err, "Source", m.Source.Validate())
	err = errors.AppendField(err, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		err = errors.AppendField(err, "Memo", errors.ErrInput.New("too long"))
	}
	return err
}

type sendMsgView SendMsg

func (m *sendMsgView) Reset()         { *m = sendMsgView{} }
func (m *sendMsgView) String() string { return proto.CompactTextString(m) }
func (*sendMsgView) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*sendMsgView)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*sendMsgView)(m))
}
