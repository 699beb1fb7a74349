package app

import (
	"fmt"
	"regexp"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// isPath accepts paths like "kitties/adopt".
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path of
// its message.
type Router struct {
	routes map[string]weft.Handler
}

var _ weft.Registry = (*Router)(nil)
var _ weft.Handler = (*Router)(nil)

func NewRouter() *Router {
	return &Router{routes: make(map[string]weft.Handler)}
}

// Handle registers h for the path of msg. It panics on a malformed or
// already registered path.
func (r *Router) Handle(msg weft.Msg, h weft.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid message path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

func (r *Router) handler(tx weft.Tx) (weft.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())
	}
	return h, nil
}

func (r *Router) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

func (r *Router) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}
