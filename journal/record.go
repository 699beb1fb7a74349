package journal

import (
	"encoding/binary"
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/errors"
)

// Record is an event together with the place where it was emitted.
type Record struct {
	Height  int64       `protobuf:"varint,1,opt,name=height,proto3" json:"height"`
	TxIndex uint32      `protobuf:"varint,2,opt,name=tx_index,json=txIndex,proto3" json:"tx_index"`
	Index   uint32      `protobuf:"varint,3,opt,name=index,proto3" json:"index"`
	Event   *weft.Event `protobuf:"bytes,4,opt,name=event,proto3" json:"event"`
}

// Records converts the events of a single transaction into journal records.
func Records(height int64, txIndex uint32, events []*weft.Event) []Record {
	recs := make([]Record, 0, len(events))
	for i, e := range events {
		recs = append(recs, Record{
			Height:  height,
			TxIndex: txIndex,
			Index:   uint32(i),
			Event:   e,
		})
	}
	return recs
}

func (r Record) String() string {
	return fmt.Sprintf("%d/%d/%d %s", r.Height, r.TxIndex, r.Index, r.Event)
}

func (r *Record) Validate() error {
	var errs error
	if r.Height <= 0 {
		errs = errors.AppendField(errs, "Height", errors.ErrInput)
	}
	if r.Event == nil {
		errs = errors.AppendField(errs, "Event", errors.ErrEmpty)
	} else if err := r.Event.Validate(); err != nil {
		errs = errors.AppendField(errs, "Event", err)
	}
	return errs
}

type recordView Record

func (m *recordView) Reset()         { *m = recordView{} }
func (m *recordView) String() string { return proto.CompactTextString(m) }
func (*recordView) ProtoMessage()    {}

func (r *Record) Marshal() ([]byte, error) {
	return codec.Marshal((*recordView)(r))
}

func (r *Record) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*recordView)(r))
}

const keyPrefix = "ev:"

// key orders records by height, transaction and event index.
func (r Record) key() []byte {
	k := make([]byte, len(keyPrefix)+16)
	n := copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[n:], uint64(r.Height))
	binary.BigEndian.PutUint32(k[n+8:], r.TxIndex)
	binary.BigEndian.PutUint32(k[n+12:], r.Index)
	return k
}

func heightKey(height int64) []byte {
	k := make([]byte, len(keyPrefix)+8)
	n := copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[n:], uint64(height))
	return k
}
