package kittyd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/commands/server"
	"github.com/kittyverse/weft/crypto"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/journal"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultTicker is the currency of development chains.
const DefaultTicker = "KIT"

// GenInitOptions builds the app_state of a development chain: one rich
// account that also owns the kitties configuration.
//
//	kittyd init [ticker] [address]
//
// Without an address a new key is generated and its seed printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr weft.Address
	if len(args) > 1 {
		a, err := weft.ParseAddress(args[1])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		addr = a
	} else {
		key := crypto.GenPrivKeyEd25519()
		addr = key.PublicKey().Address()
		fmt.Println("private key:", hex.EncodeToString(key.Ed25519))
	}

	state := map[string]interface{}{
		"cash": []interface{}{
			map[string]interface{}{
				"address": addr,
				"coins":   []string{"123456789 " + ticker},
			},
		},
		"conf": map[string]interface{}{
			"kitties": map[string]interface{}{
				"owner":           addr,
				"deposit":         "10 " + ticker,
				"owned_on_create": false,
				"record_birth":    true,
			},
		},
		"kitties": []interface{}{},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// GenerateApp opens the state and the journal in the home directory. An
// empty home keeps everything in memory.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, func(), error) {
	var (
		dbPath string
		j      *journal.Journal
		err    error
	)
	if home == "" {
		j, err = journal.OpenMem(logger)
	} else {
		dbPath = filepath.Join(home, "kitty.db")
		j, err = journal.Open(server.JournalPath(home), logger)
	}
	if err != nil {
		return nil, nil, err
	}

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		j.Close()
		return nil, nil, err
	}
	cleanup := func() {
		kv.Close()
		if err := j.Close(); err != nil {
			logger.Error("cannot close journal", "err", err)
		}
	}

	j.Subscribe("", func(r journal.Record) {
		logger.Debug("event", "height", r.Height, "tx", r.TxIndex, "event", r.Event)
	})
	application, err := Application(kv, j, logger, debug)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return application, cleanup, nil
}
