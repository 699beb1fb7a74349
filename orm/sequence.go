package orm

import (
	"encoding/binary"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// SeqID is the name of the default id sequence of a bucket.
const SeqID = "id"

// Sequence is a persisted counter. Each returned value is greater than the
// previous one, both as a number and as bytes.
type Sequence struct {
	id    []byte
	limit uint64
}

// NewSequence returns a counter stored under
//
//	_s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	return Sequence{
		id:    []byte("_s." + bucket + ":" + name),
		limit: 1<<63 - 1,
	}
}

// WithLimit returns a copy of the sequence that refuses to grow past max.
func (s Sequence) WithLimit(max uint64) Sequence {
	s.limit = max
	return s
}

// Key returns the state key of the counter.
func (s Sequence) Key() []byte {
	return s.id
}

// NextVal increments the counter and returns it encoded on 8 bytes.
func (s Sequence) NextVal(db weft.KVStore) ([]byte, error) {
	val, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt increments the counter and returns it. It fails with ErrOverflow
// if the counter already reached its limit, leaving the state untouched.
func (s Sequence) NextInt(db weft.KVStore) (uint64, error) {
	val, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	if val >= s.limit {
		return 0, errors.Wrapf(errors.ErrOverflow, "sequence %s reached %d", s.id, s.limit)
	}
	val++
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return 0, errors.Wrap(err, "cannot store sequence")
	}
	return val, nil
}

// Latest returns the last value handed out, or 0. It does not modify the
// counter.
func (s Sequence) Latest(db weft.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return DecodeSequence(raw)
}

// Set moves the counter to val. Use only when importing genesis data.
func (s Sequence) Set(db weft.KVStore, val uint64) error {
	if val > s.limit {
		return errors.Wrapf(errors.ErrOverflow, "sequence %s limit is %d", s.id, s.limit)
	}
	return db.Set(s.id, EncodeSequence(val))
}

// EncodeSequence returns the big endian form of val.
func EncodeSequence(val uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, val)
	return raw
}

// DecodeSequence parses a value produced by EncodeSequence. Nil is zero.
func DecodeSequence(raw []byte) (uint64, error) {
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrInput, "sequence of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
