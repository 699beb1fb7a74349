package weft

import (
	"encoding/json"

	"github.com/kittyverse/weft/errors"
)

// Handler processes messages of a single kind, like kitty adoption.
type Handler interface {
	Checker
	Deliverer
}

// Checker verifies that a transaction could be executed.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide functionality shared by many
// handlers, like authentication or logging.
type Decorator interface {
	Check(ctx Context, db KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, db KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is the setup side of a router.
type Registry interface {
	// Handle registers the handler for all messages with the same path
	// as msg.
	Handle(msg Msg, h Handler)
}

// Options are the genesis application state. Each extension looks up its
// own key.
type Options map[string]json.RawMessage

// ReadOptions parses the JSON stored under the key into obj. A missing key
// is not an error and leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw := o[key]
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "options %q: %s", key, err)
	}
	return nil
}

// Initializer sets up the state of an extension from the genesis file.
type Initializer interface {
	FromGenesis(ctx Context, opts Options, db KVStore) error
}
