package coin

import (
	"testing"

	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/wefttest/assert"
)

func TestCoinsValidate(t *testing.T) {
	cat, dog := NewCoinp(1, 0, "CAT"), NewCoinp(1, 0, "DOG")
	cases := map[string]struct {
		coins   Coins
		wantErr *errors.Error
	}{
		"empty":      {coins: nil},
		"sorted":     {coins: Coins{cat, dog}},
		"unsorted":   {coins: Coins{dog, cat}, wantErr: errors.ErrState},
		"duplicated": {coins: Coins{cat, cat}, wantErr: errors.ErrState},
		"zero":       {coins: Coins{NewCoinp(0, 0, "CAT")}, wantErr: errors.ErrAmount},
		"nil member": {coins: Coins{nil}, wantErr: errors.ErrEmpty},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.coins.Validate())
		})
	}
}
