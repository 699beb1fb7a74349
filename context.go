package weft

import (
	"context"
	"regexp"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is the context passed between the app, decorators and handlers.
type Context = context.Context

type contextKey int

const (
	contextKeyHeader contextKey = iota
	contextKeyHeight
	contextKeyChainID
	contextKeyLogger
	contextKeyBlockTime
	contextKeyRandomSeed
	contextKeyTxIndex
)

var (
	// DefaultLogger is used by every context without a logger.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID checks the chain id format.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeader sets the block header. It panics if a header is already set.
func WithHeader(ctx Context, header abci.Header) Context {
	if _, ok := GetHeader(ctx); ok {
		panic("header already set")
	}
	return context.WithValue(ctx, contextKeyHeader, header)
}

// GetHeader returns the current block header.
func GetHeader(ctx Context) (abci.Header, bool) {
	val, ok := ctx.Value(contextKeyHeader).(abci.Header)
	return val, ok
}

// WithHeight sets the block height. It panics if a height is already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id. It panics if the chain id is already set
// or is malformed.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id, or an empty string.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithBlockTime sets the time of the current block.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// BlockTime returns the time of the current block. It falls back to the
// header time.
func BlockTime(ctx Context) (time.Time, bool) {
	if t, ok := ctx.Value(contextKeyBlockTime).(time.Time); ok {
		return t, true
	}
	if h, ok := GetHeader(ctx); ok && !h.Time.IsZero() {
		return h.Time, true
	}
	return time.Time{}, false
}

// WithRandomSeed sets the random seed of the current block. The seed must
// be the same on every node.
func WithRandomSeed(ctx Context, seed []byte) Context {
	return context.WithValue(ctx, contextKeyRandomSeed, seed)
}

// GetRandomSeed returns the random seed of the current block.
func GetRandomSeed(ctx Context) ([]byte, bool) {
	val, ok := ctx.Value(contextKeyRandomSeed).([]byte)
	return val, ok
}

// WithTxIndex sets the position of the transaction within its block.
func WithTxIndex(ctx Context, index uint32) Context {
	return context.WithValue(ctx, contextKeyTxIndex, index)
}

// GetTxIndex returns the position of the transaction within its block.
func GetTxIndex(ctx Context) (uint32, bool) {
	val, ok := ctx.Value(contextKeyTxIndex).(uint32)
	return val, ok
}

// WithLogger sets the logger.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo adds the key value pairs to the logger of the context.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the logger of the context, or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
