package gconf

import (
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
)

// ReadStore is the part of weft.ReadOnlyKVStore needed to load a
// configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of weft.KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by every configuration entity.
type Configuration interface {
	weft.Persistent
	Validate() error
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates and writes the configuration of pkg.
func Save(db Store, pkg string, src Configuration) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "configuration %q", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal configuration %q", pkg)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of pkg into dst. It fails with ErrNotFound
// when no configuration was saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(key(pkg))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "configuration %q", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal configuration %q", pkg)
	}
	return nil
}

// InitConfig reads opts["conf"][pkg] into conf and saves it.
func InitConfig(db Store, opts weft.Options, pkg string, conf Configuration) error {
	var confs weft.Options
	if err := opts.ReadOptions("conf", &confs); err != nil {
		return errors.Wrap(err, "conf")
	}
	if len(confs[pkg]) == 0 {
		return errors.Wrapf(errors.ErrNotFound, "no genesis configuration for %q", pkg)
	}
	if err := confs.ReadOptions(pkg, conf); err != nil {
		return err
	}
	return Save(db, pkg, conf)
}
