package server

import (
	"context"
	"encoding/json"
	"io/ioutil"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
)

// ValidateGenesis loads the app_state of every genesis file into a
// throwaway store, which catches malformed state before a chain is
// started with it.
func ValidateGenesis(ini weft.Initializer, genesisPaths []string) error {
	if len(genesisPaths) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: validate <genesis file>...")
	}
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini weft.Initializer, path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "read genesis: %s", err)
	}
	var genesis struct {
		ChainID string       `json:"chain_id"`
		State   weft.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &genesis); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	if !weft.IsValidChainID(genesis.ChainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", genesis.ChainID)
	}

	ctx := weft.WithChainID(context.Background(), genesis.ChainID)
	if err := ini.FromGenesis(ctx, genesis.State, store.MemStore()); err != nil {
		return errors.Wrap(err, "initialize from genesis")
	}
	return nil
}
