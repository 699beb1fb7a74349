package kitties

import "github.com/kittyverse/weft/errors"

var (
	ErrCounterOverflow     = errors.Register(500, "kitty counter overflow")
	ErrKittyNotExists      = errors.Register(501, "kitty does not exist")
	ErrNotOwner            = errors.Register(502, "not the kitty owner")
	ErrAlreadyOwned        = errors.Register(503, "kitty already owned")
	ErrSameGenderBreeding  = errors.Register(504, "cannot breed kitties of the same gender")
	ErrNotForSale          = errors.Register(505, "kitty not for sale")
	ErrInsufficientPayment = errors.Register(506, "payment below price")
	ErrNoOwnerToBuyFrom    = errors.Register(507, "kitty has no owner to buy from")
)
