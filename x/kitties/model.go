package kitties

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/orm"
)

// KittyID identifies a kitty. Ids start at 1 and are never reused.
type KittyID uint32

// Key returns the bucket key of the kitty.
func (id KittyID) Key() []byte {
	return orm.EncodeSequence(uint64(id))
}

func (id KittyID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// DNA is the immutable genome of a kitty.
type DNA [16]byte

// Gender is derived from the parity of the first DNA byte.
type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

func (d DNA) Gender() Gender {
	return Gender(d[0] & 1)
}

func (d DNA) String() string {
	return hex.EncodeToString(d[:])
}

func (d DNA) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DNA) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "dna must be a hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "dna: %s", err)
	}
	return d.set(b)
}

func (d *DNA) set(b []byte) error {
	if len(b) != len(d) {
		return errors.Wrapf(errors.ErrInput, "dna of %d bytes", len(b))
	}
	copy(d[:], b)
	return nil
}

// Ownership is either Unowned or OwnedBy.
type Ownership interface {
	isOwnership()
}

// Unowned kitties can be adopted by anyone.
type Unowned struct{}

// OwnedBy kitties can only be handled by their owner.
type OwnedBy struct {
	Address weft.Address
}

func (Unowned) isOwnership() {}
func (OwnedBy) isOwnership() {}

// Kitty is the stored state of a single kitty.
type Kitty struct {
	DNA     DNA           `json:"dna"`
	Owner   weft.Address  `json:"owner,omitempty"`
	Price   *coin.Coin    `json:"price,omitempty"`
	Deposit *coin.Coin    `json:"deposit,omitempty"`
	BornAt  weft.UnixTime `json:"born_at,omitempty"`
	ParentA KittyID       `json:"parent_a,omitempty"`
	ParentB KittyID       `json:"parent_b,omitempty"`
}

var _ orm.Model = (*Kitty)(nil)

// Ownership returns the current owner of the kitty.
func (k *Kitty) Ownership() Ownership {
	if len(k.Owner) == 0 {
		return Unowned{}
	}
	return OwnedBy{Address: k.Owner}
}

// Listed is true if the kitty is for sale.
func (k *Kitty) Listed() bool {
	return k.Price != nil
}

func (k *Kitty) Gender() Gender {
	return k.DNA.Gender()
}

func (k *Kitty) Validate() error {
	var err error
	if len(k.Owner) != 0 {
		err = errors.AppendField(err, "Owner", k.Owner.Validate())
	}
	if k.Price != nil {
		if len(k.Owner) == 0 {
			err = errors.AppendField(err, "Price", errors.ErrState.New("unowned kitty cannot be listed"))
		}
		if !k.Price.IsPositive() {
			err = errors.AppendField(err, "Price", errors.ErrAmount.New("must be positive"))
		}
		err = errors.AppendField(err, "Price", k.Price.Validate())
	}
	if k.Deposit != nil {
		if len(k.Owner) == 0 {
			err = errors.AppendField(err, "Deposit", errors.ErrState.New("unowned kitty cannot hold a deposit"))
		}
		err = errors.AppendField(err, "Deposit", k.Deposit.Validate())
	}
	if k.BornAt != 0 {
		err = errors.AppendField(err, "BornAt", k.BornAt.Validate())
	}
	if (k.ParentA == 0) != (k.ParentB == 0) {
		err = errors.AppendField(err, "ParentB", errors.ErrState.New("both parents or none"))
	}
	return err
}
