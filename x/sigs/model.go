package sigs

import (
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/crypto"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/orm"
)

const BucketName = "sigs"

// UserData keeps the next expected sequence of a key, so that a signed
// transaction cannot be replayed.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var err error
	if u.Pubkey == nil {
		err = errors.AppendField(err, "Pubkey", errors.ErrEmpty)
	} else {
		err = errors.AppendField(err, "Pubkey", u.Pubkey.Validate())
	}
	if u.Sequence < 0 {
		err = errors.AppendField(err, "Sequence", ErrInvalidSequence)
	}
	return err
}

// CheckAndIncrementSequence accepts only the expected sequence and moves to
// the next one.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", u.Sequence, expected)
	}
	if u.Sequence == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	u.Sequence++
	return nil
}

type userDataView UserData

func (m *userDataView) Reset()         { *m = userDataView{} }
func (m *userDataView) String() string { return proto.CompactTextString(m) }
func (*userDataView) ProtoMessage()    {}

func (u *UserData) Marshal() ([]byte, error) {
	return codec.Marshal((*userDataView)(u))
}

func (u *UserData) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*userDataView)(u))
}

// NewBucket returns the bucket of UserData, keyed by the key address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// loadUser returns the state of the key, a fresh one if unknown.
func loadUser(db weft.ReadOnlyKVStore, b orm.ModelBucket, pub *crypto.PublicKey) (*UserData, error) {
	var u UserData
	switch err := b.One(db, pub.Address(), &u); {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pub}, nil
	default:
		return nil, err
	}
}

// NextSequence returns the sequence the next signature of pub must carry.
func NextSequence(db weft.ReadOnlyKVStore, pub *crypto.PublicKey) (int64, error) {
	u, err := loadUser(db, NewBucket(), pub)
	if err != nil {
		return 0, err
	}
	return u.Sequence, nil
}
