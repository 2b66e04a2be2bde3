// Package preferences implements versioned user preferences on top of a
// pluggable key-value Store.
package preferences

import (
	"errors"
	"sync"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/stop"
)

var (
	driversM sync.RWMutex
	drivers  = make(map[string]Driver)
)

// Driver is the interface used to initialize a new type of Store.
type Driver interface {
	NewStore(cfg interface{}) (Store, error)
}

// ErrKeyNotFound is returned by Get for keys that were never set or were
// deleted.
var ErrKeyNotFound = finance.NotFoundError("preference key not found")

// ErrDriverDoesNotExist is the error returned by NewStore when a store
// driver with that name does not exist.
var ErrDriverDoesNotExist = errors.New("preference store driver with that name does not exist")

// Store is a last-write-wins string key-value store.
type Store interface {
	// Get returns the value of key or ErrKeyNotFound.
	Get(key string) (string, error)

	// Put sets key to value, replacing any previous value.
	Put(key, value string) error

	// Delete removes keys. Keys that do not exist are ignored.
	Delete(keys ...string) error

	stop.Stopper
}

// Locker is implemented by Stores that are shared between processes and can
// hold a named lock across them.
type Locker interface {
	// Lock blocks until the named lock is held and returns a function that
	// releases it.
	Lock(name string) (unlock func() error, err error)
}

// RegisterDriver makes a Driver available by the provided name.
//
// If called twice with the same name, the name is blank, or if the provided
// Driver is nil, this function panics.
func RegisterDriver(name string, d Driver) {
	if name == "" {
		panic("preferences: could not register a Driver with an empty name")
	}
	if d == nil {
		panic("preferences: could not register a nil Driver")
	}

	driversM.Lock()
	defer driversM.Unlock()

	if _, dup := drivers[name]; dup {
		panic("preferences: RegisterDriver called twice for " + name)
	}

	drivers[name] = d
}

// NewStore attempts to initialize a new Store given a name from the list of
// registered Drivers.
//
// If a driver does not exist, returns ErrDriverDoesNotExist.
func NewStore(name string, cfg interface{}) (Store, error) {
	driversM.RLock()
	defer driversM.RUnlock()

	d, ok := drivers[name]
	if !ok {
		return nil, ErrDriverDoesNotExist
	}

	return d.NewStore(cfg)
}
