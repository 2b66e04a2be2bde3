package preferences

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/log"
)

// migrations[i] upgrades a store from version i to version i+1.
var migrations = []func(Store) error{
	normalizeSelectedDataset,
}

// Migrate upgrades the schema of s to CurrentVersion. Stores without a
// version are treated as version 0. Stores implementing Locker are migrated
// under a lock, and the version is checked again once it is held.
func Migrate(s Store) error {
	stored, err := storedVersion(s)
	if err != nil || stored >= CurrentVersion {
		return err
	}

	if l, ok := s.(Locker); ok {
		unlock, err := l.Lock("migrate")
		if err != nil {
			return errors.Wrap(err, "failed to acquire migration lock")
		}
		defer func() {
			if err := unlock(); err != nil {
				log.Warn("failed to release migration lock", log.Err(err))
			}
		}()

		if stored, err = storedVersion(s); err != nil || stored >= CurrentVersion {
			return err
		}
	}

	for v := stored; v < CurrentVersion; v++ {
		if err := migrations[v](s); err != nil {
			return errors.Wrapf(err, "failed to migrate preferences from version %d", v)
		}
	}

	log.Info("migrated preferences", log.Fields{"from": stored, "to": CurrentVersion})
	return s.Put(VersionKey, strconv.Itoa(CurrentVersion))
}

func storedVersion(s Store) (int, error) {
	raw, err := s.Get(VersionKey)
	if err == ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, errors.Wrap(err, "failed to read preferences version")
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Warn("treating malformed preferences version as 0", log.Fields{"version": raw})
		return 0, nil
	}
	return v, nil
}

// normalizeSelectedDataset rewrites long dataset names ("datasetB") to the
// short form read by version 1, and drops unknown ones.
func normalizeSelectedDataset(s Store) error {
	raw, err := s.Get(KeySelectedDataset)
	if err == ErrKeyNotFound {
		return nil
	} else if err != nil {
		return err
	}

	v, err := finance.ParseDatasetVariant(raw)
	if err != nil {
		return s.Delete(KeySelectedDataset)
	}
	return s.Put(KeySelectedDataset, v.Short())
}
