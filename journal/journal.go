package journal

import (
	"encoding/binary"
	"sync"

	"github.com/kittyverse/weft/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/tendermint/tendermint/libs/log"
)

// Handler is called with every record of a subscribed kind.
type Handler func(Record)

// Journal is a goleveldb backed log of committed events.
type Journal struct {
	db     *leveldb.DB
	logger log.Logger

	mu   sync.RWMutex
	subs map[string][]Handler
}

var lastHeightKey = []byte("_meta:height")

// Open opens or creates the journal stored in the directory.
func Open(path string, logger log.Logger) (*Journal, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open journal %q: %s", path, err)
	}
	return newJournal(db, logger), nil
}

// OpenMem returns a journal that lives in memory only.
func OpenMem(logger log.Logger) (*Journal, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open memory journal: %s", err)
	}
	return newJournal(db, logger), nil
}

func newJournal(db *leveldb.DB, logger log.Logger) *Journal {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Journal{
		db:     db,
		logger: logger.With("module", "journal"),
		subs:   make(map[string][]Handler),
	}
}

// Close releases the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Subscribe registers fn for events of the given kind. An empty kind
// subscribes to every event.
func (j *Journal) Subscribe(kind string, fn Handler) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.subs[kind] = append(j.subs[kind], fn)
}

// Append writes the records of a committed block in a single batch and then
// notifies the subscribers. Heights must grow with every call.
func (j *Journal) Append(height int64, recs []Record) error {
	last, err := j.LastHeight()
	if err != nil {
		return err
	}
	if height <= last {
		return errors.Wrapf(errors.ErrState, "height %d already journaled, last is %d", height, last)
	}

	batch := new(leveldb.Batch)
	for i := range recs {
		recs[i].Height = height
		if err := recs[i].Validate(); err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
		raw, err := recs[i].Marshal()
		if err != nil {
			return errors.Wrap(err, "marshal record")
		}
		batch.Put(recs[i].key(), raw)
	}
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], uint64(height))
	batch.Put(lastHeightKey, h[:])

	if err := j.db.Write(batch, nil); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "write journal: %s", err)
	}

	for _, r := range recs {
		j.notify(r)
	}
	return nil
}

func (j *Journal) notify(r Record) {
	j.mu.RLock()
	var handlers []Handler
	handlers = append(handlers, j.subs[r.Event.Kind]...)
	handlers = append(handlers, j.subs[""]...)
	j.mu.RUnlock()

	for _, fn := range handlers {
		func() {
			defer func() {
				if p := recover(); p != nil {
					j.logger.Error("subscriber panic", "kind", r.Event.Kind, "height", r.Height, "panic", p)
				}
			}()
			fn(r)
		}()
	}
}

// LastHeight returns the height of the latest appended block, or zero.
func (j *Journal) LastHeight() (int64, error) {
	raw, err := j.db.Get(lastHeightKey, nil)
	switch {
	case err == leveldb.ErrNotFound:
		return 0, nil
	case err != nil:
		return 0, errors.Wrapf(errors.ErrDatabase, "read last height: %s", err)
	case len(raw) != 8:
		return 0, errors.Wrap(errors.ErrState, "malformed last height")
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

// Replay calls fn for every record at or above the height in commit order.
// It stops at the first error returned by fn.
func (j *Journal) Replay(from int64, fn func(Record) error) error {
	if from < 0 {
		from = 0
	}
	rng := &util.Range{Start: heightKey(from), Limit: util.BytesPrefix([]byte(keyPrefix)).Limit}
	it := j.db.NewIterator(rng, nil)
	defer it.Release()

	for it.Next() {
		var r Record
		if err := r.Unmarshal(it.Value()); err != nil {
			return errors.Wrapf(err, "record %x", it.Key())
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	if err := it.Error(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "iterate journal: %s", err)
	}
	return nil
}
