package utils

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// Savepoint runs the rest of the stack on a cache wrap. The writes are kept
// only if the call succeeds, so a failed transaction leaves no trace in the
// state.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ weft.Decorator = Savepoint{}

// NewSavepoint returns a Savepoint that is disabled until OnCheck or
// OnDeliver is called.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver enables the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	var res *weft.CheckResult
	err := savepoint(s.onCheck, db, func(db weft.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	return res, err
}

func (s Savepoint) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	var res *weft.DeliverResult
	err := savepoint(s.onDeliver, db, func(db weft.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	return res, err
}

func savepoint(enabled bool, db weft.KVStore, fn func(weft.KVStore) error) error {
	cstore, ok := db.(weft.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "write savepoint")
}
