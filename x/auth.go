/*
Package x holds what extensions share: the Authenticator that tells a
handler who signed the transaction, and helpers built on top of it.
*/
package x

import (
	"github.com/kittyverse/weft"
)

// Authenticator extracts the conditions fulfilled by the transaction. It is
// passed to handler constructors so that the authentication scheme can be
// swapped.
type Authenticator interface {
	// GetConditions returns all conditions fulfilled.
	GetConditions(weft.Context) []weft.Condition
	// HasAddress is true if any condition matches the address.
	HasAddress(weft.Context, weft.Address) bool
}

// MultiAuth chains many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls: impls}
}

func (m MultiAuth) GetConditions(ctx weft.Context) []weft.Condition {
	var res []weft.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx weft.Context, addr weft.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition, or nil. The address of the main
// signer is the caller of every kitty operation.
func MainSigner(ctx weft.Context, auth Authenticator) weft.Condition {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil
	}
	return conds[0]
}

// AnySigner returns the address of the main signer, or nil.
func AnySigner(ctx weft.Context, auth Authenticator) weft.Address {
	if c := MainSigner(ctx, auth); c != nil {
		return c.Address()
	}
	return nil
}

// GetAddresses returns the addresses of all fulfilled conditions.
func GetAddresses(ctx weft.Context, auth Authenticator) []weft.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]weft.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// HasAllAddresses is true if every required address signed.
func HasAllAddresses(ctx weft.Context, auth Authenticator, required []weft.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
