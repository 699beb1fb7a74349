package cash

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest/assert"
)

func TestGenesis(t *testing.T) {
	addr := weft.NewAddress([]byte("alice"))

	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    coin.Coins
	}{
		"no cash section": {
			Genesis: `{}`,
		},
		"funded account": {
			Genesis: `{"cash": [{"address": "` + addr.String() + `", "coins": ["12.5 KIT", {"whole": 3, "ticker": "ETH"}]}]}`,
			Want:    coin.Coins{coin.NewCoinp(3, 0, "ETH"), coin.NewCoinp(12, 500000000, "KIT")},
		},
		"zero coin": {
			Genesis: `{"cash": [{"address": "` + addr.String() + `", "coins": ["0 KIT"]}]}`,
			WantErr: errors.ErrAmount,
		},
		"missing address": {
			Genesis: `{"cash": [{"coins": ["1 KIT"]}]}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weft.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.Genesis), &opts))
			db := store.MemStore()
			err := Initializer{}.FromGenesis(context.Background(), opts, db)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr != nil {
				return
			}
			got, err := NewController().Balance(db, addr)
			assert.Nil(t, err)
			assert.Equal(t, true, tc.Want.Equals(got))
		})
	}
}
