// Package memory implements a preference Store that lives in process
// memory. Its contents are lost on restart.
package memory

import (
	"sync"

	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/stop"
	"github.com/wellfin/wellfin/preferences"
)

// Name is the name by which this store is registered.
const Name = "memory"

func init() {
	preferences.RegisterDriver(Name, driver{})
}

type driver struct{}

func (d driver) NewStore(_ interface{}) (preferences.Store, error) {
	return New(), nil
}

type store struct {
	sync.RWMutex
	values map[string]string
	closed bool
}

// New creates an empty in-memory Store.
func New() preferences.Store {
	log.Debug("preferences: using in-memory store")
	return &store{values: make(map[string]string)}
}

func (s *store) panicIfClosed() {
	if s.closed {
		panic("attempted to interact with stopped memory store")
	}
}

func (s *store) Get(key string) (string, error) {
	s.RLock()
	defer s.RUnlock()
	s.panicIfClosed()

	v, ok := s.values[key]
	if !ok {
		return "", preferences.ErrKeyNotFound
	}
	return v, nil
}

func (s *store) Put(key, value string) error {
	s.Lock()
	defer s.Unlock()
	s.panicIfClosed()

	s.values[key] = value
	return nil
}

func (s *store) Delete(keys ...string) error {
	s.Lock()
	defer s.Unlock()
	s.panicIfClosed()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *store) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		s.Lock()
		s.closed = true
		s.values = nil
		s.Unlock()
		c.Done()
	}()
	return c.Result()
}
