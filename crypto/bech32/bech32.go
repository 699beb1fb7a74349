// Package bech32 converts binary payloads, like addresses, from and to the
// bech32 text format.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/kittyverse/weft/errors"
)

// Decode returns the human readable part and the payload of raw.
func Decode(raw string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// Encode returns the bech32 form of payload with the given human readable
// part.
func Encode(hrp string, payload []byte) ([]byte, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return []byte(raw), nil
}
