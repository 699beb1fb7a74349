package weft_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("address is printed as bech32", t, func() {
		addr := weft.NewAddress([]byte("tom"))

		So(addr.String(), ShouldStartWith, weft.AddressPrefix+"1")
		So(addr.String(), ShouldNotEqual, fmt.Sprintf("%X", []byte(addr)))

		back, err := weft.ParseAddress(addr.String())
		So(err, ShouldBeNil)
		So(back, ShouldResemble, addr)
	})

	Convey("condition keeps extension and type readable", t, func() {
		cond := weft.NewCondition("sigs", "ed25519", []byte{0xCA, 0xFE})

		So(cond.String(), ShouldEqual, "sigs/ed25519/CAFE")
	})
}

func TestParseAddress(t *testing.T) {
	addr := weft.NewAddress([]byte("jerry"))
	cond := weft.NewCondition("sigs", "ed25519", []byte("key"))

	cases := map[string]struct {
		input    string
		wantErr  *errors.Error
		wantAddr weft.Address
	}{
		"bare hex": {
			input:    fmt.Sprintf("%x", []byte(addr)),
			wantAddr: addr,
		},
		"hex prefix": {
			input:    fmt.Sprintf("hex:%X", []byte(addr)),
			wantAddr: addr,
		},
		"bare bech32": {
			input:    addr.String(),
			wantAddr: addr,
		},
		"bech32 prefix": {
			input:    "bech32:" + addr.String(),
			wantAddr: addr,
		},
		"condition": {
			input:    "cond:sigs/ed25519/6B6579",
			wantAddr: cond.Address(),
		},
		"too short": {
			input:   "hex:CAFE",
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			input:   "base64:AAAA",
			wantErr: errors.ErrType,
		},
		"not hex": {
			input:   "xyz",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := weft.ParseAddress(tc.input)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	type owner struct {
		Owner weft.Address `json:"owner"`
	}
	src := owner{Owner: weft.NewAddress([]byte("tom"))}

	raw, err := json.Marshal(src)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"kitty1`), string(raw))

	var got owner
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, src, got)

	require.NoError(t, json.Unmarshal([]byte(`{"owner": ""}`), &got))
	assert.Nil(t, got.Owner)
}

func TestConditionValidate(t *testing.T) {
	assert.NoError(t, weft.NewCondition("sigs", "ed25519", []byte{1}).Validate())
	assert.Error(t, weft.Condition("no slashes").Validate())
	assert.Error(t, weft.NewCondition("x", "ed25519", []byte{1}).Validate())

	_, _, _, err := weft.Condition("bad").Parse()
	assert.True(t, errors.ErrInput.Is(err))
}
