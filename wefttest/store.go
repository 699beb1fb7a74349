package wefttest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/kittyverse/weft/store/iavl"
)

// CommitKVStore returns a goleveldb backed store in a temporary directory,
// the same engine the node runs on. Call cleanup when done.
func CommitKVStore(t testing.TB) (db *iavl.CommitStore, cleanup func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "wefttest")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = iavl.NewCommitStore(dir, "db")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot open store: %s", err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}
