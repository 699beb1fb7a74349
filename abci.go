package weft

import (
	"github.com/kittyverse/weft/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a successful Check.
type CheckResult struct {
	// Data is a machine readable return value.
	Data []byte
	// Log is a human readable message.
	Log string
	// GasAllocated is the cost the handler estimates for Deliver.
	GasAllocated int64
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverResult is returned by a successful Deliver.
type DeliverResult struct {
	// Data is a machine readable return value, like the id of a created
	// kitty.
	Data []byte
	// Log is a human readable message.
	Log string
	// Events are the state transitions of the transaction. They are
	// indexed by tendermint as tags and published after commit.
	Events  []*Event
	GasUsed int64
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    EventTags(d.Events),
		GasUsed: d.GasUsed,
	}
}

// EventTags flattens events into tendermint tags. Every event produces an
// "action" tag with its kind and one "<kind>.<key>" tag per attribute.
func EventTags(events []*Event) []common.KVPair {
	var tags []common.KVPair
	for _, e := range events {
		tags = append(tags, common.KVPair{Key: []byte("action"), Value: []byte(e.Kind)})
		for _, a := range e.Attributes {
			tags = append(tags, common.KVPair{
				Key:   []byte(e.Kind + "." + a.Key),
				Value: []byte(a.Value),
			})
		}
	}
	return tags
}

// DeliverOrError returns the response for DeliverTx.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	return result.ToABCI()
}

// CheckOrError returns the response for CheckTx.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	return result.ToABCI()
}
