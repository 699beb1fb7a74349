package orm

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// Model is an entity that can be stored in a ModelBucket.
type Model interface {
	weft.Persistent
	Validate() error
}

// ModelBucket stores models of a single type.
type ModelBucket interface {
	// One loads the model stored under key into dest. It returns
	// ErrNotFound if there is none.
	One(db weft.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if a model is stored under key.
	Has(db weft.ReadOnlyKVStore, key []byte) (bool, error)

	// Put validates and saves the model.
	Put(db weft.KVStore, key []byte, m Model) error

	// Delete removes the model. It returns ErrNotFound if there is none.
	Delete(db weft.KVStore, key []byte) error

	// Register serves the bucket content under /name.
	Register(name string, r weft.QueryRouter)
}

// NewModelBucket returns a ModelBucket storing in the bucket of the given
// name.
func NewModelBucket(name string) ModelBucket {
	return &modelBucket{b: NewBucket(name)}
}

type modelBucket struct {
	b Bucket
}

func (mb *modelBucket) One(db weft.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "db get")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (mb *modelBucket) Has(db weft.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(mb.b.DBKey(key))
}

func (mb *modelBucket) Put(db weft.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(mb.b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db weft.KVStore, key []byte) error {
	dbkey := mb.b.DBKey(key)
	has, err := db.Has(dbkey)
	if err != nil {
		return err
	}
	if !has {
		return errors.ErrNotFound
	}
	return db.Delete(dbkey)
}

func (mb *modelBucket) Register(name string, r weft.QueryRouter) {
	mb.b.Register(name, r)
}
