package wefttest

import (
	"github.com/kittyverse/weft"
)

// Handler returns the configured results and counts its calls.
type Handler struct {
	checkCall   int
	CheckResult weft.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult weft.DeliverResult
	DeliverErr    error

	// If set, every call writes this pair before returning.
	Key, Value []byte
}

var _ weft.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db weft.KVStore) error {
	if h.Key == nil {
		return nil
	}
	return db.Set(h.Key, h.Value)
}

func (h *Handler) CheckCallCount() int   { return h.checkCall }
func (h *Handler) DeliverCallCount() int { return h.deliverCall }
func (h *Handler) CallCount() int        { return h.checkCall + h.deliverCall }

// PanicHandler panics on every call.
type PanicHandler struct {
	Msg interface{}
}

func (p PanicHandler) Check(weft.Context, weft.KVStore, weft.Tx) (*weft.CheckResult, error) {
	panic(p.Msg)
}

func (p PanicHandler) Deliver(weft.Context, weft.KVStore, weft.Tx) (*weft.DeliverResult, error) {
	panic(p.Msg)
}

// Decorator counts its calls and returns Err instead of calling the next
// handler when set.
type Decorator struct {
	checkCall   int
	deliverCall int
	Err         error
}

var _ weft.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	d.checkCall++
	if d.Err != nil {
		return nil, d.Err
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	d.deliverCall++
	if d.Err != nil {
		return nil, d.Err
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int   { return d.checkCall }
func (d *Decorator) DeliverCallCount() int { return d.deliverCall }
