package app

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Querier is the query side of an ABCI application.
type Querier interface {
	Query(abci.RequestQuery) abci.ResponseQuery
}

// Query runs a query against the application and decodes the response
// into models. Failed queries return the error of the response code.
func Query(app Querier, path string, data []byte) ([]weft.Model, error) {
	res := app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	var keys, values ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := values.Unmarshal(res.Value); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	return JoinResults(&keys, &values)
}

// QueryOne loads the single model stored under the key into dest. It
// returns ErrNotFound if there is none.
func QueryOne(app Querier, path string, key []byte, dest weft.Persistent) error {
	res := app.Query(abci.RequestQuery{Path: path, Data: key})
	if res.Code != errors.SuccessABCICode {
		return errors.ABCIError(res.Code, res.Log)
	}
	return UnmarshalOneResult(res.Value, dest)
}
