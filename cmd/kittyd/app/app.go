/*
Package kittyd wires the extensions into the kitty ledger application.
*/
package kittyd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/app"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/journal"
	"github.com/kittyverse/weft/store/iavl"
	"github.com/kittyverse/weft/x"
	"github.com/kittyverse/weft/x/cash"
	"github.com/kittyverse/weft/x/kitties"
	"github.com/kittyverse/weft/x/sigs"
	"github.com/kittyverse/weft/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported by the abci Info call.
const Name = "kittyd"

// Authenticator accepts signatures only.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns the decorators every transaction passes through.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// A failed check never touches the mempool state.
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// A failed delivery still bumps the sequence of its signers.
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router registers the handlers of all extensions.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := cash.NewController()
	cash.RegisterRoutes(r, authFn, ctrl)
	kitties.RegisterRoutes(r, authFn, kitties.NewController(kitties.NewKittyStore(), ctrl))
	return r
}

// QueryRouter serves "/wallets", "/reserves", "/auth", "/kitties" and
// "/kitties/count".
func QueryRouter() weft.QueryRouter {
	r := weft.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		kitties.RegisterQuery,
	)
	return r
}

// Stack is the complete transaction handler.
func Stack() weft.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers load the genesis of every extension. Cash goes first so that
// genesis kitties can reserve their deposits.
func Initializers() weft.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		kitties.Initializer{},
	)
}

// Application builds the node application on top of the given store.
func Application(kv weft.CommitKVStore, j *journal.Journal, logger log.Logger, debug bool) (*app.BaseApp, error) {
	s, err := app.NewStoreApp(Name, kv, QueryRouter(), context.Background())
	if err != nil {
		return nil, err
	}
	s = s.WithInit(Initializers()).WithLogger(logger)
	base := app.NewBaseApp(s, TxDecoder, Stack(), debug)
	if j != nil {
		base = base.WithJournal(j)
	}
	return base, nil
}

// CommitKVStore opens the store at dbPath, or a memory store if the path
// is empty.
func CommitKVStore(dbPath string) (*iavl.CommitStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "database path %q", dbPath)
	}
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
}
