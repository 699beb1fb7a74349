package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/kittyverse/weft/errors"
)

// degree of every cache btree. Caches are short lived and small.
const degree = 8

// entry is a write staged in a cache wrap.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

func (e entry) model() Model {
	return Model{Key: e.key, Value: e.value}
}

// BTreeCacheWrap stages writes in a btree on top of a read only parent.
// Reads see the staged writes first. Write replays them, in order, into
// out, which usually is the parent itself.
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  *NonAtomicBatch
}

var _ KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap returns a cache over parent that flushes into out. free
// may be nil.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, out SetDeleter, free *btree.FreeList) *BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return &BTreeCacheWrap{
		bt:     btree.NewWithFreeList(degree, free),
		free:   free,
		parent: parent,
		batch:  NewNonAtomicBatch(out),
	}
}

// MemStore returns an empty in memory store. Nothing is persisted.
func MemStore() CacheableKVStore {
	var base EmptyKVStore
	return NewBTreeCacheWrap(base, base, nil)
}

// CacheWrap layers another cache on top of this one. The free list is
// shared.
func (b *BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b, b.free)
}

func (b *BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes the staged writes into the parent and empties the cache.
func (b *BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return errors.Wrap(err, "cache write")
}

// Discard drops all staged writes.
func (b *BTreeCacheWrap) Discard() {
	b.bt.Clear(true)
	b.batch.ops = nil
}

// Ops returns the writes staged since the last Write or Discard.
func (b *BTreeCacheWrap) Ops() []Op {
	return b.batch.ShowOps()
}

func (b *BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInput, "nil key")
	}
	b.bt.ReplaceOrInsert(entry{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b *BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInput, "nil key")
	}
	b.bt.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b *BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if item := b.bt.Get(entry{key: key}); item != nil {
		e := item.(entry)
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return b.parent.Get(key)
}

func (b *BTreeCacheWrap) Has(key []byte) (bool, error) {
	if item := b.bt.Get(entry{key: key}); item != nil {
		return !item.(entry).deleted, nil
	}
	return b.parent.Has(key)
}

func (b *BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	ms, err := b.collect(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(ms), nil
}

func (b *BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	ms, err := b.collect(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(reverse(ms)), nil
}

// collect returns the merged content of the range in ascending order.
func (b *BTreeCacheWrap) collect(start, end []byte) ([]Model, error) {
	it, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "parent iterator")
	}
	parent, err := ReadAll(it)
	if err != nil {
		return nil, err
	}

	var cached []entry
	visit := func(i btree.Item) bool {
		cached = append(cached, i.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		b.bt.Ascend(visit)
	case start == nil:
		b.bt.AscendLessThan(entry{key: end}, visit)
	case end == nil:
		b.bt.AscendGreaterOrEqual(entry{key: start}, visit)
	default:
		b.bt.AscendRange(entry{key: start}, entry{key: end}, visit)
	}
	return merge(parent, cached), nil
}

// EmptyKVStore never holds any data. It is the base layer of MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has(key []byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error    { return nil }
func (EmptyKVStore) Delete(key []byte) error        { return nil }

func (EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}
