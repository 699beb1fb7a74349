package weft

import (
	"reflect"

	"github.com/kittyverse/weft/errors"
)

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request to make a state transition. Authentication data lives in
// the wrapping Tx.
type Msg interface {
	Persistent

	// Path is used by the router to find the handler. It must be unique
	// per message type, like "kitties/adopt".
	Path() string

	// Validate checks the message content without looking at the state.
	Validate() error
}

// Tx is what a user sends to the chain. Besides the message it carries
// whatever the decorators need, like signatures.
type Tx interface {
	Persistent

	// GetMsg returns the action this transaction requests.
	GetMsg() (Msg, error)
}

// TxDecoder parses the raw bytes of a transaction.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or "(missing)".
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return "(missing)"
	}
	return msg.Path()
}

// LoadMsg extracts the message of the transaction into destination, which
// must be a pointer to the message type. The message is validated.
//
//	var msg AdoptMsg
//	if err := weft.LoadMsg(tx, &msg); err != nil {
//		return err
//	}
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Type() == dest.Type() {
		src = src.Elem()
	}
	if src.Type() != dest.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
