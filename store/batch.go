package store

import (
	"github.com/kittyverse/weft/errors"
)

type opKind int8

const (
	setKind opKind = iota + 1
	delKind
)

// Op is a single write recorded by a batch.
type Op struct {
	kind  opKind
	key   []byte
	value []byte
}

// SetOp records a set of key to value.
func SetOp(key, value []byte) Op {
	return Op{kind: setKind, key: key, value: value}
}

// DelOp records a delete of key.
func DelOp(key []byte) Op {
	return Op{kind: delKind, key: key}
}

// Apply performs the operation on out.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrHuman, "unknown op kind %d", o.kind)
	}
}

// NonAtomicBatch collects operations and replays them on Write. It is only
// safe for in memory targets, where a partial write cannot be observed.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInput, "nil key")
	}
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInput, "nil key")
	}
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write replays all operations in order and resets the batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// ShowOps returns the recorded operations.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
