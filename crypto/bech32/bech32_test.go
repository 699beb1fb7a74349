package bech32

import (
	"bytes"
	"testing"

	"github.com/kittyverse/weft/errors"
)

func TestRoundTrip(t *testing.T) {
	payload := []byte{0, 1, 2, 3, 250, 251, 252, 253, 254, 255}
	raw, err := Encode("kitty", payload)
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	if !bytes.HasPrefix(raw, []byte("kitty1")) {
		t.Fatalf("unexpected prefix: %s", raw)
	}
	hrp, got, err := Decode(string(raw))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if hrp != "kitty" || !bytes.Equal(got, payload) {
		t.Fatalf("got %q %X", hrp, got)
	}
}

func TestDecodeChecksum(t *testing.T) {
	raw, err := Encode("kitty", []byte("tom"))
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	raw[len(raw)-1] ^= 1
	if _, _, err := Decode(string(raw)); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
