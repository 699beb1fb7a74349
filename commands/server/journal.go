package server

import (
	"encoding/json"
	"flag"
	"io"
	"path/filepath"

	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/journal"
	"github.com/tendermint/tendermint/libs/log"
)

// JournalPath is where the node keeps its event journal.
func JournalPath(home string) string {
	return filepath.Join(home, "journal")
}

// JournalCmd prints the journaled events as JSON lines, starting at the
// height given with -from and optionally limited to a single -kind.
func JournalCmd(logger log.Logger, home string, args []string, out io.Writer) error {
	var (
		from int64
		kind string
	)
	fs := flag.NewFlagSet("journal", flag.ContinueOnError)
	fs.Int64Var(&from, "from", 0, "first block height to print")
	fs.StringVar(&kind, "kind", "", "only print events of this kind")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	path := JournalPath(home)
	if !fileExists(path) {
		return errors.Wrapf(errors.ErrNotFound, "no journal in %s", home)
	}
	j, err := journal.Open(path, logger)
	if err != nil {
		return err
	}
	defer j.Close()

	enc := json.NewEncoder(out)
	return j.Replay(from, func(r journal.Record) error {
		if kind != "" && r.Event.Kind != kind {
			return nil
		}
		return errors.Wrap(enc.Encode(r), "write record")
	})
}
