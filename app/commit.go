package app

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// CommitStore keeps separate cache wraps for DeliverTx and CheckTx on top of
// a CommitKVStore.
type CommitStore struct {
	committed weft.CommitKVStore
	deliver   weft.KVCacheWrap
	check     weft.KVCacheWrap
}

// NewCommitStore loads the latest version of the store.
func NewCommitStore(store weft.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (weft.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes the deliver cache, persists a new version and starts fresh
// caches. Pending check state is dropped.
func (cs *CommitStore) Commit() (weft.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return weft.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return id, nil
}

// CheckStore is the store used by CheckTx.
func (cs *CommitStore) CheckStore() weft.CacheableKVStore {
	return cs.check
}

// DeliverStore is the store used by DeliverTx and InitChain.
func (cs *CommitStore) DeliverStore() weft.CacheableKVStore {
	return cs.deliver
}

// _wf: prefixes framework data
const chainIDKey = "_wf:chainID"

func loadChainID(kv weft.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores the chain id once. It fails if one is set already.
func saveChainID(kv weft.KVStore, chainID string) error {
	if !weft.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id is set at genesis")
	}
	return errors.Wrap(kv.Set(k, []byte(chainID)), "save chain id")
}
