package server

import (
	"flag"

	"github.com/kittyverse/weft/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"
)

// StartOptions are the flags of the start command.
type StartOptions struct {
	Bind  string
	Debug bool
}

func parseStartFlags(args []string) (StartOptions, error) {
	var opts StartOptions
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.StringVar(&opts.Bind, flagBind, "tcp://localhost:26658", "address the abci server listens on")
	fs.BoolVar(&opts.Debug, flagDebug, false, "return stack traces in failed responses")
	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInput, err.Error())
	}
	return opts, nil
}

// AppGenerator builds the application stored in the home directory. The
// returned cleanup releases its databases.
type AppGenerator func(home string, logger log.Logger, debug bool) (app abci.Application, cleanup func(), err error)

// StartCmd runs the abci server until the process receives a signal.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	opts, err := parseStartFlags(args)
	if err != nil {
		return err
	}
	app, cleanup, err := gen(home, logger, opts.Debug)
	if err != nil {
		return err
	}

	logger.Info("starting abci app", "bind", opts.Bind)
	svr, err := server.NewServer(opts.Bind, "socket", app)
	if err != nil {
		cleanup()
		return errors.Wrapf(errors.ErrInput, "create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		cleanup()
		return errors.Wrapf(errors.ErrState, "start server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		svr.Stop()
		cleanup()
	})
	// TrapSignal exits the process from its own goroutine.
	select {}
}
