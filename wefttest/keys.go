package wefttest

import (
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/crypto"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() weft.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress is weft.ParseAddress that fails the test on error.
func ParseAddress(t testing.TB, s string) weft.Address {
	t.Helper()
	addr, err := weft.ParseAddress(s)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", s, err)
	}
	return addr
}
