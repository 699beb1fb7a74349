package weft

// ReadOnlyKVStore is the read side of a key value store.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist.
	Get(key []byte) ([]byte, error)

	// Has returns true if a value is stored under the key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is
	// exclusive. A nil start or end means unbounded.
	// No writes may happen within a domain while an iterator exists
	// over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write side of a key value store.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the interface extensions use to persist their state.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write to this store.
	NewBatch() Batch
}

// Batch collects writes that are applied together with Write.
type Batch interface {
	SetDeleter
	Write() error
}

/*
Iterator walks over a set of key value pairs.

	it, err := db.Iterator(start, end)
	if err != nil {
		return err
	}
	defer it.Release()

	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		} else if err != nil {
			return err
		}
		// ...
	}
*/
type Iterator interface {
	// Next returns the next pair, or ErrIteratorDone once the iterator
	// is exhausted.
	Next() (key, value []byte, err error)

	// Release frees the resources held by the iterator.
	Release()
}

// CacheableKVStore is a KVStore that supports savepoints.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap keeps a scratch pad of uncommitted writes that is visible to
// all reads done through it.
//
// Call Write to flush the writes to the parent store or Discard to drop them.
type KVCacheWrap interface {
	CacheableKVStore

	Write() error
	Discard()
}

// CommitKVStore is a store that persists versions of its state.
type CommitKVStore interface {
	// Get returns the value at the last committed version.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a cache wrap on top of the last committed
	// version. Writing it stages data for the next Commit.
	CacheWrap() KVCacheWrap

	// Commit persists the next version and returns its id.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version.
	LoadLatestVersion() error

	// LatestVersion returns the id of the latest persisted version.
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
