package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/errors"
)

// ResultSet is the encoding of the Key and Value of a query response. Both
// hold one entry per returned model, in the same order.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3"`
}

type resultSetView ResultSet

func (m *resultSetView) Reset()         { *m = resultSetView{} }
func (m *resultSetView) String() string { return proto.CompactTextString(m) }
func (*resultSetView) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) {
	return codec.Marshal((*resultSetView)(r))
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*resultSetView)(r))
}

// ResultsFromKeys collects the keys of the models.
func ResultsFromKeys(models []weft.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues collects the values of the models.
func ResultsFromValues(models []weft.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults pairs keys and values of a query response back into models.
func JoinResults(keys, values *ResultSet) ([]weft.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys and %d values", len(keys.Results), len(values.Results))
	}
	mods := make([]weft.Model, len(keys.Results))
	for i := range mods {
		mods[i] = weft.Pair(keys.Results[i], values.Results[i])
	}
	return mods, nil
}

// UnmarshalOneResult decodes the first value of a query response into dest.
// It returns ErrNotFound if the response is empty.
func UnmarshalOneResult(raw []byte, dest weft.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(raw); err != nil {
		return errors.Wrap(err, "result set")
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return dest.Unmarshal(res.Results[0])
}
