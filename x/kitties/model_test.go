package kitties

import (
	"encoding/json"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/wefttest/assert"
)

func TestKittyValidate(t *testing.T) {
	owner := weft.NewAddress([]byte("owner"))

	cases := map[string]struct {
		kitty   Kitty
		field   string
		wantErr *errors.Error
	}{
		"unowned": {
			kitty: Kitty{},
		},
		"owned and listed": {
			kitty: Kitty{Owner: owner, Price: coin.NewCoinp(1, 0, "KIT"), Deposit: coin.NewCoinp(1, 0, "KIT")},
		},
		"listed without owner": {
			kitty:   Kitty{Price: coin.NewCoinp(1, 0, "KIT")},
			field:   "Price",
			wantErr: errors.ErrState,
		},
		"zero price": {
			kitty:   Kitty{Owner: owner, Price: coin.NewCoinp(0, 0, "KIT")},
			field:   "Price",
			wantErr: errors.ErrAmount,
		},
		"deposit without owner": {
			kitty:   Kitty{Deposit: coin.NewCoinp(1, 0, "KIT")},
			field:   "Deposit",
			wantErr: errors.ErrState,
		},
		"bad owner": {
			kitty:   Kitty{Owner: []byte("short")},
			field:   "Owner",
			wantErr: errors.ErrInput,
		},
		"single parent": {
			kitty:   Kitty{ParentA: 3},
			field:   "ParentB",
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.kitty.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.field, tc.wantErr)
		})
	}
}

func TestKittyCodec(t *testing.T) {
	k := &Kitty{
		DNA:     DNA{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		Owner:   weft.NewAddress([]byte("owner")),
		Price:   coin.NewCoinp(3, 0, "KIT"),
		Deposit: coin.NewCoinp(1, 0, "KIT"),
		BornAt:  1550000000,
		ParentA: 1,
		ParentB: 2,
	}
	raw, err := k.Marshal()
	assert.Nil(t, err)
	var got Kitty
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, k, &got)

	// The genome is always 16 bytes.
	var bad Kitty
	assert.IsErr(t, errors.ErrInput, bad.Unmarshal([]byte{0x0a, 0x02, 0x01, 0x02}))
}

func TestGender(t *testing.T) {
	assert.Equal(t, Male, DNA{0x10}.Gender())
	assert.Equal(t, Female, DNA{0x11}.Gender())
	assert.Equal(t, "female", Female.String())
}

func TestMixDNA(t *testing.T) {
	a := DNA{0xff, 0x00, 0xf0, 0x00}
	b := DNA{0x00, 0xff, 0x0f, 0xff}
	sel := DNA{0xf0, 0xf0, 0xff, 0x00}

	child := mixDNA(sel, a, b)
	assert.Equal(t, byte(0xf0), child[0])
	assert.Equal(t, byte(0xf0), child[1])
	assert.Equal(t, byte(0xff), child[2])
	// A clear selector clears the bit whatever the parents carry.
	assert.Equal(t, byte(0x00), child[3])
	assert.Equal(t, byte(0x00), child[4])
}

func TestDNAJSON(t *testing.T) {
	var d DNA
	assert.Nil(t, json.Unmarshal([]byte(`"000102030405060708090a0b0c0d0e0f"`), &d))
	assert.Equal(t, byte(0x0f), d[15])
	raw, err := json.Marshal(d)
	assert.Nil(t, err)
	assert.Equal(t, `"000102030405060708090a0b0c0d0e0f"`, string(raw))

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"0001"`), &d))
	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"zz"`), &d))
}
