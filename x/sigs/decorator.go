/*
Package sigs verifies the ed25519 signatures of a transaction and keeps a
sequence per key to prevent replays. The signers are made available to the
rest of the stack through Authenticate.
*/
package sigs

import (
	"context"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/x"
)

const signatureVerifyCost = 500

// RegisterQuery serves the key states under /auth.
func RegisterQuery(qr weft.QueryRouter) {
	NewBucket().Register("auth", qr)
}

type contextKey int

const contextKeySigners contextKey = iota

func withSigners(ctx weft.Context, signers []weft.Condition) weft.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate exposes the verified signers of the current transaction.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx weft.Context) []weft.Condition {
	val, _ := ctx.Value(contextKeySigners).([]weft.Condition)
	return val
}

func (a Authenticate) HasAddress(ctx weft.Context, addr weft.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// Decorator verifies the signatures of every SignedTx. Transactions that
// are not signed pass through untouched.
type Decorator struct {
	allowMissingSigs bool
}

var _ weft.Decorator = Decorator{}

// NewDecorator returns a decorator that requires at least one signature.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs lets signed transactions without any signature through.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return next.Check(ctx, db, tx)
	}
	signers, err := d.verify(ctx, db, stx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(withSigners(ctx, signers), db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(len(signers) * signatureVerifyCost)
	return res, nil
}

func (d Decorator) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return next.Deliver(ctx, db, tx)
	}
	signers, err := d.verify(ctx, db, stx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(withSigners(ctx, signers), db, tx)
}

func (d Decorator) verify(ctx weft.Context, db weft.KVStore, tx SignedTx) ([]weft.Condition, error) {
	signers, err := VerifyTxSignatures(db, tx, weft.GetChainID(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return signers, nil
}
