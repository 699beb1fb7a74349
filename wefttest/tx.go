package wefttest

import (
	"github.com/kittyverse/weft"
)

// Tx is a transaction carrying Msg. If Err is set, GetMsg returns it.
type Tx struct {
	Msg weft.Msg
	Err error
}

var _ weft.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weft.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

// Msg is a message routed to RoutePath. Err is returned by Validate and by
// the codec.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ weft.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
