package app

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/journal"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds transaction processing to StoreApp.
type BaseApp struct {
	*StoreApp
	decoder weft.TxDecoder
	handler weft.Handler
	journal *journal.Journal
	debug   bool

	// txIndex is the position of the next delivered transaction in the
	// block, checkIndex the same for the mempool.
	txIndex    uint32
	checkIndex uint32

	// pending are the events of the current block, journaled on commit.
	pending []journal.Record
}

var _ abci.Application = (*BaseApp)(nil)

func NewBaseApp(store *StoreApp, decoder weft.TxDecoder, handler weft.Handler, debug bool) *BaseApp {
	return &BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// WithJournal makes Commit append the events of every block to j.
func (b *BaseApp) WithJournal(j *journal.Journal) *BaseApp {
	b.journal = j
	return b
}

// DeliverTx decodes the transaction and passes it to the handler.
func (b *BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	index := b.txIndex
	b.txIndex++

	tx, err := b.loadTx(txBytes)
	if err != nil {
		return weft.DeliverOrError(nil, err, b.debug)
	}
	ctx := weft.WithTxIndex(b.BlockContext(), index)
	ctx = weft.WithLogInfo(ctx, "call", "deliver_tx", "path", weft.GetPath(tx), "tx_index", index)

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err == nil {
		height, _ := weft.GetHeight(ctx)
		b.pending = append(b.pending, journal.Records(height, index, res.Events)...)
	}
	return weft.DeliverOrError(res, err, b.debug)
}

// CheckTx runs the handler against the mempool state.
func (b *BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	index := b.checkIndex
	b.checkIndex++

	tx, err := b.loadTx(txBytes)
	if err != nil {
		return weft.CheckOrError(nil, err, b.debug)
	}
	ctx := weft.WithTxIndex(b.checkContext(), index)
	ctx = weft.WithLogInfo(ctx, "call", "check_tx", "path", weft.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return weft.CheckOrError(res, err, b.debug)
}

// checkContext is the block context for the mempool. Until the first block
// begins after a restart there is no header, so the seed is the one of the
// block following the committed height and the block time is the local
// clock. Deliver never uses these values.
func (b *BaseApp) checkContext() weft.Context {
	ctx := b.BlockContext()
	if _, ok := weft.GetRandomSeed(ctx); !ok {
		height, _ := weft.GetHeight(ctx)
		ctx = weft.WithRandomSeed(ctx, blockSeed(b.GetChainID(), abci.Header{Height: height + 1}))
	}
	if _, ok := weft.BlockTime(ctx); !ok {
		ctx = weft.WithBlockTime(ctx, time.Now())
	}
	return ctx
}

// BeginBlock sets up the block context with the random seed of the block
// and resets the transaction index.
func (b *BaseApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	res := b.StoreApp.BeginBlock(req)
	seed := blockSeed(b.GetChainID(), req.Header)
	b.blockContext = weft.WithRandomSeed(b.blockContext, seed)
	b.txIndex = 0
	b.pending = nil
	return res
}

// blockSeed is the hash of the previous block. The genesis block has none,
// so its seed is derived from the chain id and height.
func blockSeed(chainID string, h abci.Header) []byte {
	if len(h.LastBlockId.Hash) > 0 {
		return append([]byte{}, h.LastBlockId.Hash...)
	}
	var height [8]byte
	binary.BigEndian.PutUint64(height[:], uint64(h.Height))
	sum := sha256.Sum256(append([]byte(chainID), height[:]...))
	return sum[:]
}

// Commit persists the state and then journals the events of the block.
func (b *BaseApp) Commit() abci.ResponseCommit {
	id, err := b.commit()
	if err != nil {
		panic(err)
	}
	b.checkIndex = 0

	recs := b.pending
	b.pending = nil
	if b.journal != nil {
		if err := b.journal.Append(id.Version, recs); err != nil {
			b.logger.Error("cannot journal block events", "height", id.Version, "err", err)
		}
	}
	return abci.ResponseCommit{Data: id.Hash}
}

// loadTx decodes the transaction, turning decoder panics into errors.
func (b *BaseApp) loadTx(txBytes []byte) (tx weft.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return tx, errors.Wrap(err, "decode transaction")
}
