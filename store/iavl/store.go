/*
Package iavl persists the ledger state in a versioned merkle tree. Every
committed block produces one tree version whose root hash is the app hash
reported to tendermint.
*/
package iavl

import (
	"path/filepath"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages the committed state in an iavl tree.
type CommitStore struct {
	tree *iavl.MutableTree
	db   dbm.DB
}

var _ weft.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens (or creates) the tree stored in dir/name.db on
// goleveldb.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, filepath.Clean(dir))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return newCommitStore(db), nil
}

// MockCommitStore returns a CommitStore held in memory.
func MockCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
		db:   db,
	}
}

// Get returns the value at the last committed version.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit saves the pending writes as the next version.
func (s *CommitStore) Commit() (weft.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return weft.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return weft.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the newest persisted version.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns the id of the newest persisted version.
func (s *CommitStore) LatestVersion() (weft.CommitID, error) {
	return weft.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap returns a savepoint whose writes go to the working tree when
// written. They become part of the state on the next Commit.
func (s *CommitStore) CacheWrap() weft.KVCacheWrap {
	adapter := treeAdapter{tree: s.tree}
	return store.NewBTreeCacheWrap(adapter, adapter, nil)
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// treeAdapter exposes the working tree as a KVStore.
type treeAdapter struct {
	tree *iavl.MutableTree
}

var _ weft.KVStore = treeAdapter{}

func (a treeAdapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a treeAdapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a treeAdapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

func (a treeAdapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

func (a treeAdapter) NewBatch() weft.Batch {
	return store.NewNonAtomicBatch(a)
}

func (a treeAdapter) Iterator(start, end []byte) (weft.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, true)), nil
}

func (a treeAdapter) ReverseIterator(start, end []byte) (weft.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, false)), nil
}

func (a treeAdapter) collect(start, end []byte, ascending bool) []weft.Model {
	var res []weft.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, weft.Pair(key, value))
		return false
	})
	return res
}
