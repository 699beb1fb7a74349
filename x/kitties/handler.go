package kitties

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/gconf"
	"github.com/kittyverse/weft/x"
)

const (
	kittyCost = 50
	breedCost = 200
)

// RegisterRoutes registers the handlers of every kitties message.
func RegisterRoutes(r weft.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(&CreateKittyMsg{}, newHandler(auth, ctrl, kittyCost, create))
	r.Handle(&TransferKittyMsg{}, newHandler(auth, ctrl, kittyCost, transfer))
	r.Handle(&AdoptKittyMsg{}, newHandler(auth, ctrl, kittyCost, adopt))
	r.Handle(&AbandonKittyMsg{}, newHandler(auth, ctrl, kittyCost, abandon))
	r.Handle(&SetPriceMsg{}, newHandler(auth, ctrl, kittyCost, setPrice))
	r.Handle(&ClearPriceMsg{}, newHandler(auth, ctrl, kittyCost, clearPrice))
	r.Handle(&BuyKittyMsg{}, newHandler(auth, ctrl, kittyCost, buy))
	r.Handle(&BreedKittyMsg{}, newHandler(auth, ctrl, breedCost, breed))
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

type operation func(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error)

// handler runs a single controller operation on behalf of the main signer.
// Check runs it too, against the check state.
type handler struct {
	auth x.Authenticator
	ctrl *Controller
	cost int64
	op   operation
}

var _ weft.Handler = handler{}

func newHandler(auth x.Authenticator, ctrl *Controller, cost int64, op operation) handler {
	return handler{auth: auth, ctrl: ctrl, cost: cost, op: op}
}

func (h handler) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.op(ctx, db, h.ctrl, caller, tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{GasAllocated: h.cost}, nil
}

func (h handler) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.op(ctx, db, h.ctrl, caller, tx)
	if err != nil {
		return nil, err
	}
	res.GasUsed = h.cost
	for _, ev := range res.Events {
		weft.GetLogger(ctx).Debug("kitty state changed", "event", ev)
	}
	return res, nil
}

func (h handler) caller(ctx weft.Context) (weft.Address, error) {
	cond := x.MainSigner(ctx, h.auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return cond.Address(), nil
}

func result(ev *weft.Event, data []byte) *weft.DeliverResult {
	return &weft.DeliverResult{Data: data, Events: []*weft.Event{ev}}
}

func create(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg CreateKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	id, ev, err := ctrl.Create(ctx, db, caller)
	if err != nil {
		return nil, err
	}
	return result(ev, id.Key()), nil
}

func transfer(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg TransferKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.Transfer(ctx, db, caller, msg.KittyID, msg.Destination)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func adopt(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg AdoptKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.Adopt(ctx, db, caller, msg.KittyID)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func abandon(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg AbandonKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.Abandon(ctx, db, caller, msg.KittyID)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func setPrice(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg SetPriceMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.SetPrice(ctx, db, caller, msg.KittyID, *msg.Price)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func clearPrice(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg ClearPriceMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.ClearPrice(ctx, db, caller, msg.KittyID)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func buy(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg BuyKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := ctrl.Buy(ctx, db, caller, msg.KittyID, *msg.MaxPayment)
	if err != nil {
		return nil, err
	}
	return result(ev, nil), nil
}

func breed(ctx weft.Context, db weft.KVStore, ctrl *Controller, caller weft.Address, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg BreedKittyMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	id, ev, err := ctrl.Breed(ctx, db, caller, msg.KittyIDA, msg.KittyIDB)
	if err != nil {
		return nil, err
	}
	return result(ev, id.Key()), nil
}
