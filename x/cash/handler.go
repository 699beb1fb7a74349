package cash

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/x"
)

const sendTxCost = 100

// RegisterRoutes registers the handlers of this package.
func RegisterRoutes(r weft.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// RegisterQuery serves the spendable balances under /wallets and the
// reserved balances under /reserves.
func RegisterQuery(qr weft.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
	NewReserveBucket().Register("reserves", qr)
}

// SendHandler moves funds on behalf of the source account.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ weft.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

func (h SendHandler) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h SendHandler) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	ev := weft.NewEvent("coins_sent",
		"source", msg.Source.String(),
		"destination", msg.Destination.String(),
		"amount", msg.Amount.String(),
	)
	return &weft.DeliverResult{Events: []*weft.Event{ev}}, nil
}

func (h SendHandler) validate(ctx weft.Context, tx weft.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	return &msg, nil
}
