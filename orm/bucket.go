package orm

import (
	"fmt"
	"regexp"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a prefixed subspace of the state that serves raw key and prefix
// queries.
type Bucket struct {
	name   string
	prefix []byte
}

var _ weft.QueryHandler = Bucket{}

// NewBucket returns a bucket. It panics on a malformed name.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey returns the full key of key in the state.
func (b Bucket) DBKey(key []byte) []byte {
	// Copy so that consecutive calls never share the prefix backing array.
	out := make([]byte, len(b.prefix)+len(key))
	n := copy(out, b.prefix)
	copy(out[n:], key)
	return out
}

// Register serves the bucket under /name. An empty name uses the bucket
// name.
func (b Bucket) Register(name string, r weft.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query serves KeyQueryMod and PrefixQueryMod. Returned keys carry the
// bucket prefix.
func (b Bucket) Query(db weft.ReadOnlyKVStore, mod string, data []byte) ([]weft.Model, error) {
	switch mod {
	case weft.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []weft.Model{weft.Pair(key, value)}, nil
	case weft.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.ErrInput.Newf("unknown query mod: %s", mod)
	}
}

func queryPrefix(db weft.ReadOnlyKVStore, prefix []byte) ([]weft.Model, error) {
	it, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []weft.Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		} else if err != nil {
			return nil, err
		}
		res = append(res, weft.Pair(k, v))
	}
}

// prefixEnd returns the smallest key greater than every key with the
// prefix, or nil if there is none.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
