package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/kittyverse/weft/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions builds the app_state of the genesis file from the
// arguments of the init command.
type GenInitOptions func(args []string) (json.RawMessage, error)

// GenesisPath is where tendermint keeps the genesis file of a home
// directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd writes the app_state into the genesis file created by
// "tendermint init". An existing app_state is kept unless -f is given.
func InitCmd(gen GenInitOptions, logger log.Logger, home string, args []string) error {
	var force bool
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.BoolVar(&force, "f", false, "overwrite an existing app_state")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	path := GenesisPath(home)
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "read genesis, run tendermint init first: %s", err)
	}
	// Fields the application does not know about are kept as they are.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	if state, ok := doc["app_state"]; ok && len(state) > 0 && string(state) != "null" && !force {
		return errors.Wrap(errors.ErrDuplicate, "genesis already has an app_state, use -f to overwrite")
	}

	state, err := gen(fs.Args())
	if err != nil {
		return errors.Wrap(err, "generate app_state")
	}
	doc["app_state"] = state
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(path, out, 0600); err != nil {
		return errors.Wrapf(errors.ErrInput, "write genesis: %s", err)
	}
	logger.Info("app_state written", "path", path)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
