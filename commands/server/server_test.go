package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

// newHome creates a home directory with a genesis file like the one
// written by tendermint init.
func newHome(t *testing.T) string {
	t.Helper()
	home, err := ioutil.TempDir("", "kittyhome")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0755))
	genesis := `{"genesis_time": "2019-05-01T10:00:00Z", "chain_id": "kitty-test", "validators": []}`
	require.NoError(t, ioutil.WriteFile(GenesisPath(home), []byte(genesis), 0600))
	return home
}

func petState(args []string) (json.RawMessage, error) {
	name := "tom"
	if len(args) > 0 {
		name = args[0]
	}
	return json.RawMessage(`{"pet": "` + name + `"}`), nil
}

func readGenesis(t *testing.T, home string) map[string]json.RawMessage {
	t.Helper()
	raw, err := ioutil.ReadFile(GenesisPath(home))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestInitCmd(t *testing.T) {
	home := newHome(t)
	defer os.RemoveAll(home)
	logger := log.NewNopLogger()

	require.NoError(t, InitCmd(petState, logger, home, nil))
	doc := readGenesis(t, home)
	assert.JSONEq(t, `{"pet": "tom"}`, string(doc["app_state"]))
	assert.JSONEq(t, `"kitty-test"`, string(doc["chain_id"]))
	assert.JSONEq(t, `[]`, string(doc["validators"]))

	err := InitCmd(petState, logger, home, []string{"jerry"})
	assert.True(t, errors.ErrDuplicate.Is(err))

	require.NoError(t, InitCmd(petState, logger, home, []string{"-f", "jerry"}))
	doc = readGenesis(t, home)
	assert.JSONEq(t, `{"pet": "jerry"}`, string(doc["app_state"]))

	err = InitCmd(petState, logger, filepath.Join(home, "missing"), nil)
	assert.True(t, errors.ErrInput.Is(err))
}

// petInit requires a pet in the genesis.
type petInit struct{}

func (petInit) FromGenesis(ctx weft.Context, opts weft.Options, db weft.KVStore) error {
	var pet string
	if err := opts.ReadOptions("pet", &pet); err != nil {
		return err
	}
	if pet == "" {
		return errors.Wrap(errors.ErrEmpty, "pet")
	}
	return db.Set([]byte("pet"), []byte(pet))
}

func TestValidateGenesis(t *testing.T) {
	home := newHome(t)
	defer os.RemoveAll(home)

	err := ValidateGenesis(petInit{}, []string{GenesisPath(home)})
	assert.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, InitCmd(petState, log.NewNopLogger(), home, nil))
	require.NoError(t, ValidateGenesis(petInit{}, []string{GenesisPath(home)}))

	err = ValidateGenesis(petInit{}, nil)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestStartFlags(t *testing.T) {
	opts, err := parseStartFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", opts.Bind)
	assert.False(t, opts.Debug)

	opts, err = parseStartFlags([]string{"-bind", "unix:///tmp/kitty.sock", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "unix:///tmp/kitty.sock", opts.Bind)
	assert.True(t, opts.Debug)

	_, err = parseStartFlags([]string{"-min_fee", "1 KIT"})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestJournalCmd(t *testing.T) {
	home := newHome(t)
	defer os.RemoveAll(home)
	logger := log.NewNopLogger()

	var out bytes.Buffer
	err := JournalCmd(logger, home, nil, &out)
	assert.True(t, errors.ErrNotFound.Is(err))

	j, err := journal.Open(JournalPath(home), logger)
	require.NoError(t, err)
	events := []*weft.Event{
		weft.NewEvent("kitty_created", "kitty_id", 1),
		weft.NewEvent("kitty_adopted", "kitty_id", 1),
	}
	require.NoError(t, j.Append(1, journal.Records(1, 0, events[:1])))
	require.NoError(t, j.Append(2, journal.Records(2, 0, events[1:])))
	require.NoError(t, j.Close())

	require.NoError(t, JournalCmd(logger, home, nil, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	var rec journal.Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.EqualValues(t, 2, rec.Height)
	assert.Equal(t, "kitty_adopted", rec.Event.Kind)

	out.Reset()
	require.NoError(t, JournalCmd(logger, home, []string{"-kind", "kitty_created"}, &out))
	assert.Contains(t, out.String(), "kitty_created")
	assert.NotContains(t, out.String(), "kitty_adopted")

	out.Reset()
	require.NoError(t, JournalCmd(logger, home, []string{"-from", "2"}, &out))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))

}
