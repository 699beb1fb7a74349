/*
Package store provides the KVStore implementations used by the ledger:
an in memory btree cache that backs every savepoint, and (in the iavl
subpackage) the persistent merkle tree committed at the end of each block.

A transaction never writes to the committed state directly. The app gives
it a cache wrap, decorators may layer more cache wraps on top, and only a
successful run writes the layers back down.
*/
package store

import (
	"github.com/kittyverse/weft"
)

type (
	ReadOnlyKVStore  = weft.ReadOnlyKVStore
	SetDeleter       = weft.SetDeleter
	KVStore          = weft.KVStore
	Batch            = weft.Batch
	Iterator         = weft.Iterator
	CacheableKVStore = weft.CacheableKVStore
	KVCacheWrap      = weft.KVCacheWrap
	CommitKVStore    = weft.CommitKVStore
	CommitID         = weft.CommitID
	Model            = weft.Model
)
