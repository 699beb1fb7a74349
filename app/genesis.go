package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// Genesis is the part of the tendermint genesis file the application reads.
type Genesis struct {
	ChainID  string       `json:"chain_id"`
	AppState weft.Options `json:"app_state"`
}

// LoadGenesis reads a tendermint genesis file.
func LoadGenesis(path string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read genesis: %s", err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	return &gen, nil
}

// ChainInitializers runs every initializer in order, stopping at the first
// failure.
func ChainInitializers(inits ...weft.Initializer) weft.Initializer {
	return chainInitializer(inits)
}

type chainInitializer []weft.Initializer

func (c chainInitializer) FromGenesis(ctx weft.Context, opts weft.Options, db weft.KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(ctx, opts, db); err != nil {
			return err
		}
	}
	return nil
}
