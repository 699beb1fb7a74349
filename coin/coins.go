package coin

import (
	"sort"
	"strings"

	"github.com/kittyverse/weft/errors"
)

// Coins is a set of coins with distinct tickers, sorted by ticker and
// without zero amounts.
type Coins []*Coin

// CombineCoins adds all coins into a normalized set.
func CombineCoins(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Add returns a new set with c added.
func (cs Coins) Add(c Coin) (Coins, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res := cs.Clone()
	i := sort.Search(len(res), func(i int) bool { return res[i].Ticker >= c.Ticker })
	if i < len(res) && res[i].Ticker == c.Ticker {
		sum, err := res[i].Add(c)
		if err != nil {
			return nil, err
		}
		if sum.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = &sum
		return res, nil
	}
	if c.IsZero() {
		return res, nil
	}
	res = append(res, nil)
	copy(res[i+1:], res[i:])
	res[i] = c.Clone()
	return res, nil
}

// Subtract returns a new set with c removed. The result may hold negative
// amounts, check IsNonNegative.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Get returns the amount of the given currency, zero if absent.
func (cs Coins) Get(ticker string) Coin {
	for _, c := range cs {
		if c.Ticker == ticker {
			return *c
		}
	}
	return Coin{Ticker: ticker}
}

// Contains is true if the set holds at least c.
func (cs Coins) Contains(c Coin) bool {
	return cs.Get(c.Ticker).IsGTE(c)
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative is true if no amount is negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate checks every coin and the set ordering.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if c == nil {
			return errors.ErrEmpty.Newf("coin %d", i)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.ErrAmount.Newf("zero coin %s", c.Ticker)
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			return errors.ErrState.New("coins not sorted or duplicated")
		}
	}
	return nil
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
