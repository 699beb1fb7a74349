package coin

import (
	"encoding/json"
	"testing"

	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/wefttest/assert"
)

func TestCoinArithmetic(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		wantSum Coin
		wantErr *errors.Error
	}{
		"whole values": {
			a:       NewCoin(200, 0, "CAT"),
			b:       NewCoin(50, 0, "CAT"),
			wantSum: NewCoin(250, 0, "CAT"),
		},
		"fractional carry": {
			a:       NewCoin(1, 600000000, "CAT"),
			b:       NewCoin(0, 500000000, "CAT"),
			wantSum: NewCoin(2, 100000000, "CAT"),
		},
		"sign change": {
			a:       NewCoin(1, 0, "CAT"),
			b:       NewCoin(-1, -500000000, "CAT"),
			wantSum: NewCoin(0, -500000000, "CAT"),
		},
		"different currency": {
			a:       NewCoin(1, 0, "CAT"),
			b:       NewCoin(1, 0, "DOG"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "CAT"),
			b:       NewCoin(1, 0, "CAT"),
			wantErr: errors.ErrOverflow,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantSum, got)
			}
		})
	}
}

func TestCoinCompare(t *testing.T) {
	price := NewCoin(200, 0, "CAT")
	assert.Equal(t, true, NewCoin(250, 0, "CAT").IsGTE(price))
	assert.Equal(t, true, price.IsGTE(price))
	assert.Equal(t, false, NewCoin(199, 999999999, "CAT").IsGTE(price))
	assert.Equal(t, false, NewCoin(300, 0, "DOG").IsGTE(price))
	assert.Equal(t, true, price.IsPositive())
	assert.Equal(t, false, Coin{Ticker: "CAT"}.IsPositive())
	assert.Equal(t, true, IsEmpty(nil))

	rest, err := NewCoin(250, 0, "CAT").Subtract(price)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(50, 0, "CAT"), rest)
}

func TestCoinValidate(t *testing.T) {
	assert.Nil(t, NewCoin(1, 5, "CAT").Validate())
	assert.FieldError(t, NewCoin(1, 0, "cat").Validate(), "Ticker", errors.ErrCurrency)
	assert.FieldError(t, NewCoin(1, -5, "CAT").Validate(), "Fractional", errors.ErrState)
	assert.FieldError(t, NewCoin(MaxInt+1, 0, "CAT").Validate(), "Whole", errors.ErrOverflow)
}

func TestHumanFormat(t *testing.T) {
	cases := map[string]struct {
		input   string
		want    Coin
		wantErr bool
	}{
		"whole":       {input: "200 CAT", want: NewCoin(200, 0, "CAT")},
		"fraction":    {input: "1.5 CAT", want: NewCoin(1, 500000000, "CAT")},
		"smallest":    {input: "0.000000001 CAT", want: NewCoin(0, 1, "CAT")},
		"negative":    {input: "-0.25 CAT", want: NewCoin(0, -250000000, "CAT")},
		"no space":    {input: "7CAT", want: NewCoin(7, 0, "CAT")},
		"no ticker":   {input: "7", wantErr: true},
		"too precise": {input: "0.0000000001 CAT", wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.input)
			if tc.wantErr {
				assert.IsErr(t, errors.ErrInput, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
			back, err := ParseHumanFormat(got.String())
			assert.Nil(t, err)
			assert.Equal(t, got, back)
		})
	}
}

func TestCoinJSON(t *testing.T) {
	var c Coin
	assert.Nil(t, json.Unmarshal([]byte(`"10 CAT"`), &c))
	assert.Equal(t, NewCoin(10, 0, "CAT"), c)
	assert.Nil(t, json.Unmarshal([]byte(`{"whole": 3, "ticker": "DOG"}`), &c))
	assert.Equal(t, NewCoin(3, 0, "DOG"), c)
}

func TestCoinCodec(t *testing.T) {
	src := NewCoin(-4, -12, "CAT")
	raw, err := src.Marshal()
	assert.Nil(t, err)
	var got Coin
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, src, got)
}

func TestCoins(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "DOG"), NewCoin(1, 0, "CAT"), NewCoin(2, 0, "CAT"))
	assert.Nil(t, err)
	assert.Nil(t, cs.Validate())
	assert.Equal(t, "3 CAT, 5 DOG", cs.String())
	assert.Equal(t, true, cs.Contains(NewCoin(3, 0, "CAT")))
	assert.Equal(t, false, cs.Contains(NewCoin(4, 0, "CAT")))
	assert.Equal(t, NewCoin(0, 0, "EMU"), cs.Get("EMU"))

	cs, err = cs.Subtract(NewCoin(3, 0, "CAT"))
	assert.Nil(t, err)
	assert.Equal(t, "5 DOG", cs.String())

	cs, err = cs.Subtract(NewCoin(6, 0, "DOG"))
	assert.Nil(t, err)
	assert.Equal(t, false, cs.IsNonNegative())
}
