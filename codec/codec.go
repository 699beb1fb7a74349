/*
Package codec serializes the models and messages of every extension with
gogo/protobuf.

A persisted type declares its fields with protobuf struct tags, matching the
codec.proto file next to it. Because the type itself implements Marshal and
Unmarshal, those methods hand a wire view to this package: a type with the
same fields and no Marshal method, for example

	type kittyView Kitty

	func (m *kittyView) Reset()         { *m = kittyView{} }
	func (m *kittyView) String() string { return proto.CompactTextString(m) }
	func (*kittyView) ProtoMessage()    {}

	func (k *Kitty) Marshal() ([]byte, error) {
		return codec.Marshal((*kittyView)(k))
	}

Zero values are omitted, as proto3 does, so the binary form is canonical.
*/
package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft/errors"
)

// Marshaller is the encoding side of a persisted type.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Marshal encodes a wire view. An empty message encodes to an empty,
// non-nil slice.
func Marshal(view proto.Message) ([]byte, error) {
	mustBeView(view)
	raw, err := proto.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if raw == nil {
		raw = []byte{}
	}
	return raw, nil
}

// Unmarshal resets the wire view and decodes raw into it. Unknown fields
// are skipped, so that newer encodings stay readable.
func Unmarshal(raw []byte, view proto.Message) error {
	mustBeView(view)
	if err := proto.Unmarshal(raw, view); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// gogo hands types with their own Marshal method back to that method,
// which would never return.
func mustBeView(m proto.Message) {
	if _, ok := m.(Marshaller); ok {
		panic("codec: wire view must not implement Marshal")
	}
}
