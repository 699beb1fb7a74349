package kitties

import (
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMessageValidation(t *testing.T) {
	addr := weft.NewAddress([]byte("someone"))

	Convey("Given kitties messages", t, func() {
		Convey("a kitty id is required", func() {
			So(errors.ErrEmpty.Is((&AdoptKittyMsg{}).Validate()), ShouldBeTrue)
			So(errors.ErrEmpty.Is((&AbandonKittyMsg{}).Validate()), ShouldBeTrue)
			So(errors.ErrEmpty.Is((&ClearPriceMsg{}).Validate()), ShouldBeTrue)
			So(errors.ErrEmpty.Is((&BreedKittyMsg{KittyIDA: 1}).Validate()), ShouldBeTrue)
			So((&AdoptKittyMsg{KittyID: 1}).Validate(), ShouldBeNil)
			So((&BreedKittyMsg{KittyIDA: 1, KittyIDB: 2}).Validate(), ShouldBeNil)
		})

		Convey("a transfer needs a valid destination", func() {
			So(errors.ErrInput.Is((&TransferKittyMsg{KittyID: 1, Destination: []byte{1}}).Validate()), ShouldBeTrue)
			So((&TransferKittyMsg{KittyID: 1, Destination: addr}).Validate(), ShouldBeNil)
		})

		Convey("a price must be positive", func() {
			So(errors.ErrEmpty.Is((&SetPriceMsg{KittyID: 1}).Validate()), ShouldBeTrue)
			So(errors.ErrAmount.Is((&SetPriceMsg{KittyID: 1, Price: coin.NewCoinp(-1, 0, "KIT")}).Validate()), ShouldBeTrue)
			So(errors.ErrCurrency.Is((&SetPriceMsg{KittyID: 1, Price: coin.NewCoinp(1, 0, "kit")}).Validate()), ShouldBeTrue)
			So((&SetPriceMsg{KittyID: 1, Price: coin.NewCoinp(1, 0, "KIT")}).Validate(), ShouldBeNil)
		})

		Convey("a purchase offers a payment", func() {
			So(errors.ErrEmpty.Is((&BuyKittyMsg{KittyID: 1}).Validate()), ShouldBeTrue)
			So((&BuyKittyMsg{KittyID: 1, MaxPayment: coin.NewCoinp(0, 5, "KIT")}).Validate(), ShouldBeNil)
		})

		Convey("a configuration update checks the set fields only", func() {
			So(errors.ErrEmpty.Is((&UpdateConfigurationMsg{}).Validate()), ShouldBeTrue)
			So((&UpdateConfigurationMsg{Patch: &Configuration{RecordBirth: true}}).Validate(), ShouldBeNil)
			bad := &UpdateConfigurationMsg{Patch: &Configuration{Deposit: coin.NewCoin(-1, 0, "KIT")}}
			So(errors.ErrAmount.Is(bad.Validate()), ShouldBeTrue)
		})

		Convey("messages survive serialization", func() {
			msgs := []weft.Msg{
				&CreateKittyMsg{},
				&TransferKittyMsg{KittyID: 3, Destination: addr},
				&AdoptKittyMsg{KittyID: 4},
				&AbandonKittyMsg{KittyID: 5},
				&SetPriceMsg{KittyID: 6, Price: coin.NewCoinp(2, 0, "KIT")},
				&ClearPriceMsg{KittyID: 7},
				&BuyKittyMsg{KittyID: 8, MaxPayment: coin.NewCoinp(3, 0, "KIT")},
				&BreedKittyMsg{KittyIDA: 9, KittyIDB: 10},
				&UpdateConfigurationMsg{Patch: &Configuration{Owner: addr, OwnedOnCreate: true}},
			}
			for _, m := range msgs {
				raw, err := m.Marshal()
				So(err, ShouldBeNil)
				fresh := newMsg(m)
				So(fresh.Unmarshal(raw), ShouldBeNil)
				So(fresh, ShouldResemble, m)
			}
		})
	})
}

func newMsg(m weft.Msg) weft.Msg {
	switch m.(type) {
	case *CreateKittyMsg:
		return &CreateKittyMsg{}
	case *TransferKittyMsg:
		return &TransferKittyMsg{}
	case *AdoptKittyMsg:
		return &AdoptKittyMsg{}
	case *AbandonKittyMsg:
		return &AbandonKittyMsg{}
	case *SetPriceMsg:
		return &SetPriceMsg{}
	case *ClearPriceMsg:
		return &ClearPriceMsg{}
	case *BuyKittyMsg:
		return &BuyKittyMsg{}
	case *BreedKittyMsg:
		return &BreedKittyMsg{}
	case *UpdateConfigurationMsg:
		return &UpdateConfigurationMsg{}
	}
	panic("unknown message")
}
