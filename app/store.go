package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp holds the state and answers the ABCI calls that do not involve
// transactions: Info, Query, InitChain and Commit.
//
// ABCI gives no way to report failures of InitChain, BeginBlock or Commit,
// so those panic and halt the node.
type StoreApp struct {
	logger log.Logger

	// name is returned by Info.
	name string

	store       *CommitStore
	initializer weft.Initializer
	queryRouter weft.QueryRouter

	// chainID is loaded from the store or saved by InitChain.
	chainID string

	// baseContext is valid for the lifetime of the app.
	baseContext weft.Context

	// blockContext is valid for the current block.
	blockContext weft.Context
}

// NewStoreApp loads the latest state of the store.
func NewStoreApp(name string, store weft.CommitKVStore, queryRouter weft.QueryRouter, baseContext weft.Context) (*StoreApp, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	s.chainID, err = loadChainID(s.DeliverStore())
	if err != nil {
		return nil, err
	}
	if s.chainID != "" {
		s.baseContext = weft.WithChainID(s.baseContext, s.chainID)
	}

	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	s.blockContext = weft.WithHeight(s.baseContext, info.Version)
	return s, nil
}

// GetChainID returns the chain id, empty before InitChain.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer called by InitChain.
func (s *StoreApp) WithInit(init weft.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the app and its contexts.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = weft.WithLogger(s.baseContext, logger)
	if s.blockContext != nil {
		s.blockContext = weft.WithLogger(s.blockContext, logger)
	}
	s.logger = logger
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the current block.
func (s *StoreApp) BlockContext() weft.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() weft.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() weft.CacheableKVStore {
	return s.store.CheckStore()
}

// Info returns the name, version and last committed state.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          weft.Version,
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not implemented"}
}

/*
Query reads the committed state.

The path selects a query handler, for example "/kitties". It may end with
"?prefix" to return every model whose key starts with Data instead of the
single model stored under it.

Key and Value of the response are ResultSets with one entry per model.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unknown query path %q", req.Path))
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}

	models, err := qh.Query(s.store.committed.CacheWrap(), mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

// splitPath returns the path and the modifier after the "?".
func splitPath(path string) (string, string) {
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		return chunks[0], chunks[1]
	}
	return path, ""
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}

// Commit persists the delivered state.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.commit()
	if err != nil {
		panic(err)
	}
	return abci.ResponseCommit{Data: id.Hash}
}

func (s *StoreApp) commit() (weft.CommitID, error) {
	id, err := s.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	s.logger.Debug("commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return id, nil
}

// InitChain stores the chain id and runs the initializer on the genesis
// app state. It is called once, when the chain starts.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.initChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) initChain(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}
	var opts weft.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "app_state: %s", err)
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = weft.WithChainID(s.baseContext, chainID)

	if s.initializer == nil {
		return nil
	}
	ctx := weft.WithLogInfo(s.baseContext, "call", "init_chain")
	return errors.Wrap(s.initializer.FromGenesis(ctx, opts, s.DeliverStore()), "genesis")
}

// BeginBlock sets up the context of the block.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := weft.WithHeader(s.baseContext, req.Header)
	ctx = weft.WithHeight(ctx, req.Header.Height)
	ctx = weft.WithBlockTime(ctx, req.Header.Time)
	s.blockContext = ctx
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
