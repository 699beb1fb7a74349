package gconf

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/coin"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/kittyverse/weft/wefttest"
	"github.com/kittyverse/weft/wefttest/assert"
)

type myconfig struct {
	Owner weft.Address `protobuf:"bytes,1,opt,name=owner,proto3"`
	Num   int64        `protobuf:"varint,2,opt,name=num,proto3"`
	Cn    coin.Coin    `protobuf:"bytes,3,opt,name=cn,proto3"`
}

type myconfigView myconfig

func (m *myconfigView) Reset()         { *m = myconfigView{} }
func (m *myconfigView) String() string { return proto.CompactTextString(m) }
func (*myconfigView) ProtoMessage()    {}

func (c *myconfig) GetOwner() weft.Address { return c.Owner }

func (c *myconfig) Validate() error {
	if c.Num < 0 {
		return errors.Wrap(errors.ErrState, "negative num")
	}
	return nil
}

func (c *myconfig) Marshal() ([]byte, error) {
	return codec.Marshal((*myconfigView)(c))
}

func (c *myconfig) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*myconfigView)(c))
}

type myconfigMsg struct {
	Patch *myconfig
}

func (*myconfigMsg) Path() string               { return "test/update_config" }
func (*myconfigMsg) Validate() error            { return nil }
func (*myconfigMsg) Marshal() ([]byte, error)   { return nil, nil }
func (*myconfigMsg) Unmarshal(raw []byte) error { return nil }

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got myconfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "test", &got))

	conf := &myconfig{Owner: weft.NewAddress([]byte("owner")), Num: 7, Cn: coin.NewCoin(1, 2, "KIT")}
	assert.Nil(t, Save(db, "test", conf))
	assert.Nil(t, Load(db, "test", &got))
	assert.Equal(t, conf, &got)

	assert.IsErr(t, errors.ErrState, Save(db, "test", &myconfig{Num: -1}))
}

func TestInitConfig(t *testing.T) {
	owner := weft.NewAddress([]byte("owner"))
	genesis := `{"conf": {"test": {"Owner": "` + owner.String() + `", "Num": 3}}}`
	var opts weft.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "test", &myconfig{}))
	var got myconfig
	assert.Nil(t, Load(db, "test", &got))
	assert.Equal(t, int64(3), got.Num)
	assert.Equal(t, true, owner.Equals(got.Owner))

	err := InitConfig(db, opts, "missing", &myconfig{})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := wefttest.NewCondition()
	stranger := wefttest.NewCondition()

	cases := map[string]struct {
		Init       *myconfig
		Msg        weft.Msg
		Signer     weft.Condition
		WantErr    *errors.Error
		WantConfig *myconfig
	}{
		"owner can patch": {
			Init:       &myconfig{Owner: owner.Address(), Num: 5, Cn: coin.NewCoin(1, 0, "KIT")},
			Msg:        &myconfigMsg{Patch: &myconfig{Num: 9}},
			Signer:     owner,
			WantConfig: &myconfig{Owner: owner.Address(), Num: 9, Cn: coin.NewCoin(1, 0, "KIT")},
		},
		"owner can hand over ownership": {
			Init:       &myconfig{Owner: owner.Address(), Num: 5},
			Msg:        &myconfigMsg{Patch: &myconfig{Owner: stranger.Address()}},
			Signer:     owner,
			WantConfig: &myconfig{Owner: stranger.Address(), Num: 5},
		},
		"stranger cannot patch": {
			Init:       &myconfig{Owner: owner.Address(), Num: 5},
			Msg:        &myconfigMsg{Patch: &myconfig{Num: 9}},
			Signer:     stranger,
			WantErr:    errors.ErrUnauthorized,
			WantConfig: &myconfig{Owner: owner.Address(), Num: 5},
		},
		"missing configuration": {
			Msg:     &myconfigMsg{Patch: &myconfig{Num: 9}},
			Signer:  owner,
			WantErr: errors.ErrNotFound,
		},
		"empty patch": {
			Init:    &myconfig{Owner: owner.Address()},
			Msg:     &myconfigMsg{},
			Signer:  owner,
			WantErr: errors.ErrEmpty,
		},
		"message without patch field": {
			Init:    &myconfig{Owner: owner.Address()},
			Msg:     &wefttest.Msg{RoutePath: "test/update_config"},
			Signer:  owner,
			WantErr: errors.ErrType,
		},
		"patch leaves an invalid configuration": {
			Init:    &myconfig{Owner: owner.Address(), Num: 1},
			Msg:     &myconfigMsg{Patch: &myconfig{Num: -4}},
			Signer:  owner,
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Init != nil {
				assert.Nil(t, Save(db, "test", tc.Init))
			}
			auth := &wefttest.Auth{Signer: tc.Signer}
			h := NewUpdateConfigurationHandler("test", &myconfig{}, auth)

			tx := &wefttest.Tx{Msg: tc.Msg}
			cache := db.CacheWrap()
			_, err := h.Check(context.Background(), cache, tx)
			assert.IsErr(t, tc.WantErr, err)
			cache.Discard()

			_, err = h.Deliver(context.Background(), db, tx)
			assert.IsErr(t, tc.WantErr, err)

			if tc.WantConfig != nil {
				var got myconfig
				assert.Nil(t, Load(db, "test", &got))
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}
