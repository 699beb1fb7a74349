package utils

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// Recovery turns a panic down the stack into an ErrPanic error. Put it
// first so that it covers every other decorator.
type Recovery struct{}

var _ weft.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Checker) (_ *weft.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Deliverer) (_ *weft.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
