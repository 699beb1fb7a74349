package kitties

import (
	"math"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/orm"
)

const bucketName = "kitties"

// Store persists kitties and allocates their ids. It does not enforce any
// ownership rule.
type Store interface {
	// Get returns the kitty or ErrKittyNotExists.
	Get(db weft.ReadOnlyKVStore, id KittyID) (*Kitty, error)
	Put(db weft.KVStore, id KittyID, k *Kitty) error
	Has(db weft.ReadOnlyKVStore, id KittyID) (bool, error)

	// Count returns the number of kitties, which is also the highest
	// allocated id.
	Count(db weft.ReadOnlyKVStore) (uint64, error)

	// NextID allocates a new id. It fails with ErrCounterOverflow once all
	// ids are taken.
	NextID(db weft.KVStore) (KittyID, error)
}

type kittyStore struct {
	kitties orm.ModelBucket
	ids     orm.Sequence
}

var _ Store = (*kittyStore)(nil)

// NewKittyStore returns the store keeping kitties under kitties:<id> and
// the counter under _s.kitties:id.
func NewKittyStore() Store {
	return &kittyStore{
		kitties: orm.NewModelBucket(bucketName),
		ids:     orm.NewSequence(bucketName, orm.SeqID).WithLimit(math.MaxUint32),
	}
}

func (s *kittyStore) Get(db weft.ReadOnlyKVStore, id KittyID) (*Kitty, error) {
	var k Kitty
	switch err := s.kitties.One(db, id.Key(), &k); {
	case err == nil:
		return &k, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrKittyNotExists, "kitty %d", id)
	default:
		return nil, err
	}
}

func (s *kittyStore) Put(db weft.KVStore, id KittyID, k *Kitty) error {
	if id == 0 {
		return errors.Wrap(errors.ErrInput, "kitty id 0")
	}
	return s.kitties.Put(db, id.Key(), k)
}

func (s *kittyStore) Has(db weft.ReadOnlyKVStore, id KittyID) (bool, error) {
	return s.kitties.Has(db, id.Key())
}

func (s *kittyStore) Count(db weft.ReadOnlyKVStore) (uint64, error) {
	return s.ids.Latest(db)
}

func (s *kittyStore) NextID(db weft.KVStore) (KittyID, error) {
	id, err := s.ids.NextInt(db)
	if errors.ErrOverflow.Is(err) {
		return 0, errors.Wrap(ErrCounterOverflow, err.Error())
	}
	if err != nil {
		return 0, err
	}
	return KittyID(id), nil
}

// RegisterQuery serves kitties under /kitties and their number under
// /kitties/count.
func RegisterQuery(qr weft.QueryRouter) {
	orm.NewBucket(bucketName).Register(bucketName, qr)
	qr.Register("/kitties/count", countQuery{ids: orm.NewSequence(bucketName, orm.SeqID)})
}

type countQuery struct {
	ids orm.Sequence
}

func (q countQuery) Query(db weft.ReadOnlyKVStore, mod string, data []byte) ([]weft.Model, error) {
	if mod != weft.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mode %q", mod)
	}
	n, err := q.ids.Latest(db)
	if err != nil {
		return nil, err
	}
	return []weft.Model{weft.Pair(q.ids.Key(), orm.EncodeSequence(n))}, nil
}
