package app

import (
	"reflect"

	"github.com/kittyverse/weft"
)

// Decorators is a stack of decorators waiting for the final handler.
type Decorators struct {
	chain []weft.Decorator
}

/*
ChainDecorators builds a stack of decorators. The first decorator is the
outermost one.

	app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)

Nil decorators are skipped, which lets optional decorators be passed inline.
*/
func ChainDecorators(chain ...weft.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a copy of the stack with more decorators at the bottom.
func (d Decorators) Chain(chain ...weft.Decorator) Decorators {
	next := make([]weft.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNilDecorator(d weft.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack into a single Handler.
func (d Decorators) WithHandler(h weft.Handler) weft.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step runs one decorator around the rest of the stack.
type step struct {
	d    weft.Decorator
	next weft.Handler
}

var _ weft.Handler = step{}

func (s step) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
