package utils

import (
	"time"

	"github.com/kittyverse/weft"
)

// Logging logs every transaction with its duration. Failures are logged as
// errors, successful checks at debug level and successful deliveries at info
// level along with the number of events produced.
type Logging struct{}

var _ weft.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := weft.GetLogger(ctx).With("path", weft.GetPath(tx), "duration", time.Since(start)/time.Microsecond)
	if err != nil {
		logger.Error("check failed", "err", err)
	} else {
		logger.Debug("check", "log", res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := weft.GetLogger(ctx).With("path", weft.GetPath(tx), "duration", time.Since(start)/time.Microsecond)
	if err != nil {
		logger.Error("deliver failed", "err", err)
	} else {
		logger.Info("deliver", "log", res.Log, "events", len(res.Events))
	}
	return res, err
}
