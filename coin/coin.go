/*
Package coin implements fixed point currency amounts: kitty prices,
payments, wallet balances and ownership deposits.
*/
package coin

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/errors"
)

// IsCC checks a currency ticker.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest whole value accepted.
	MaxInt int64 = 999999999999999
	MinInt       = -MaxInt

	// FracUnit is the number of fractional units in one whole unit.
	FracUnit int64 = 1000000000
	MaxFrac        = FracUnit - 1
	MinFrac        = -MaxFrac
)

// Coin is an amount of a single currency. The binary layout is described
// in codec.proto.
type Coin struct {
	Whole      int64  `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	Fractional int64  `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	Ticker     string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker"`
}

// NewCoin returns a coin.
func NewCoin(whole, fractional int64, ticker string) Coin {
	return Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// Add returns the sum of both coins, which must share the ticker.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}
	sum := Coin{
		Whole:      c.Whole + o.Whole,
		Fractional: c.Fractional + o.Fractional,
		Ticker:     c.Ticker,
	}
	return sum.normalize()
}

// Subtract returns c minus o.
func (c Coin) Subtract(o Coin) (Coin, error) {
	return c.Add(o.Negative())
}

// Negative returns the opposite amount.
func (c Coin) Negative() Coin {
	return Coin{Whole: -c.Whole, Fractional: -c.Fractional, Ticker: c.Ticker}
}

// Compare returns -1, 0 or 1. Tickers are not compared.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Whole != o.Whole:
		if c.Whole < o.Whole {
			return -1
		}
		return 1
	case c.Fractional < o.Fractional:
		return -1
	case c.Fractional > o.Fractional:
		return 1
	default:
		return 0
	}
}

// Equals is true if both coins hold the same amount of the same currency.
func (c Coin) Equals(o Coin) bool {
	return c.SameType(o) && c.Compare(o) == 0
}

// IsGTE is true if c is at least o and of the same currency.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Compare(o) >= 0
}

// SameType is true if both coins have the same ticker.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

func (c Coin) IsPositive() bool {
	return c.Whole > 0 || (c.Whole == 0 && c.Fractional > 0)
}

func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsEmpty is true for a nil or zero coin.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// Clone returns a copy, nil for nil.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Validate checks the ticker, the range and that both parts share the
// sign. Negative amounts are valid coins.
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.AppendField(err, "Ticker", errors.ErrCurrency.Newf("invalid currency: %q", c.Ticker))
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		err = errors.AppendField(err, "Whole", errors.ErrOverflow)
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		err = errors.AppendField(err, "Fractional", errors.ErrOverflow)
	}
	if c.Whole != 0 && c.Fractional != 0 && (c.Whole > 0) != (c.Fractional > 0) {
		err = errors.AppendField(err, "Fractional", errors.ErrState.New("mismatched sign"))
	}
	return err
}

// normalize keeps the fractional part in range and signed like the whole
// part.
func (c Coin) normalize() (Coin, error) {
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}
	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole--
		c.Fractional += FracUnit
	} else if c.Whole < 0 && c.Fractional > 0 {
		c.Whole++
		c.Fractional -= FracUnit
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.ErrOverflow
	}
	return c, nil
}

// String returns the human readable form, for example "1.5 CAT".
func (c Coin) String() string {
	if n, err := c.normalize(); err == nil {
		c = n
	}
	var b strings.Builder
	if c.Whole == 0 && c.Fractional < 0 {
		b.WriteString("-")
	}
	b.WriteString(strconv.FormatInt(c.Whole, 10))
	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		s := strconv.FormatInt(f, 10)
		s = strings.Repeat("0", 9-len(s)) + s
		b.WriteString("." + strings.TrimRight(s, "0"))
	}
	if c.Ticker != "" {
		b.WriteString(" " + c.Ticker)
	}
	return b.String()
}

var humanFormat = regexp.MustCompile(`^(\-?)\s*(\d+)(?:\.(\d{1,9}))?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parses "<whole>[.<fractional>] <ticker>".
func ParseHumanFormat(h string) (Coin, error) {
	m := humanFormat.FindStringSubmatch(strings.TrimSpace(h))
	if m == nil {
		return Coin{}, errors.ErrInput.Newf("invalid coin format: %q", h)
	}
	whole, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrap(errors.ErrInput, "invalid whole value")
	}
	var frac int64
	if m[3] != "" {
		digits := m[3] + strings.Repeat("0", 9-len(m[3]))
		frac, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Coin{}, errors.Wrap(errors.ErrInput, "invalid fractional value")
		}
	}
	if m[1] == "-" {
		whole, frac = -whole, -frac
	}
	c := Coin{Whole: whole, Fractional: frac, Ticker: m[4]}
	return c, c.Validate()
}

// Set implements flag.Value.
func (c *Coin) Set(raw string) error {
	val, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}

// UnmarshalJSON accepts both the human readable string and the object
// form.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		val, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = val
		return nil
	}
	var obj struct {
		Whole      int64  `json:"whole"`
		Fractional int64  `json:"fractional"`
		Ticker     string `json:"ticker"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = Coin{Whole: obj.Whole, Fractional: obj.Fractional, Ticker: obj.Ticker}
	return nil
}

type coinView Coin

func (m *coinView) Reset()         { *m = coinView{} }
func (m *coinView) String() string { return proto.CompactTextString(m) }
func (*coinView) ProtoMessage()    {}

func (c *Coin) Marshal() ([]byte, error) {
	return codec.Marshal((*coinView)(c))
}

func (c *Coin) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*coinView)(c))
}
