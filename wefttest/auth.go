package wefttest

import (
	"context"
	"fmt"

	"github.com/kittyverse/weft"
)

// Auth authenticates every referenced condition. Signer and Signers are
// both considered, Signer first.
type Auth struct {
	Signer  weft.Condition
	Signers []weft.Condition
}

func (a *Auth) GetConditions(weft.Context) []weft.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]weft.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx weft.Context, addr weft.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth authenticates the conditions stored in the context under Key.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating the given conditions.
func (a *CtxAuth) SetConditions(ctx weft.Context, conds ...weft.Condition) weft.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx weft.Context) []weft.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]weft.Condition)
	if !ok {
		panic(fmt.Sprintf("want []weft.Condition, got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx weft.Context, addr weft.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
