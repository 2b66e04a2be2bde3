package preferences

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/stop"
)

type mapStore struct {
	sync.Mutex
	m     map[string]string
	locks int
}

func newMapStore() *mapStore { return &mapStore{m: make(map[string]string)} }

func (s *mapStore) Get(key string) (string, error) {
	s.Lock()
	defer s.Unlock()
	v, ok := s.m[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *mapStore) Put(key, value string) error {
	s.Lock()
	defer s.Unlock()
	s.m[key] = value
	return nil
}

func (s *mapStore) Delete(keys ...string) error {
	s.Lock()
	defer s.Unlock()
	for _, k := range keys {
		delete(s.m, k)
	}
	return nil
}

func (s *mapStore) Stop() stop.Result { return stop.AlreadyStopped }

type lockingStore struct {
	*mapStore
}

func (s lockingStore) Lock(name string) (func() error, error) {
	s.locks++
	return func() error { return nil }, nil
}

func TestMapStore(t *testing.T) { TestStore(t, newMapStore()) }

func TestMigrationNormalizesDataset(t *testing.T) {
	s := newMapStore()
	s.m[KeySelectedDataset] = "datasetB"

	p, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, "B", p.SelectedDataset)
	assert.Equal(t, finance.DatasetB, p.Dataset())
	assert.Equal(t, "1", s.m[VersionKey])

	s = newMapStore()
	s.m[KeySelectedDataset] = "Z"
	p, err = Load(s)
	require.NoError(t, err)
	assert.Equal(t, "A", p.SelectedDataset)
	assert.NotContains(t, s.m, KeySelectedDataset)
}

func TestMigrationSkippedWhenCurrent(t *testing.T) {
	s := newMapStore()
	s.m[VersionKey] = "1"
	s.m[KeySelectedDataset] = "datasetB"

	require.NoError(t, Migrate(s))
	assert.Equal(t, "datasetB", s.m[KeySelectedDataset])
}

func TestMigrateUsesLocker(t *testing.T) {
	s := lockingStore{newMapStore()}
	require.NoError(t, Migrate(s))
	assert.Equal(t, 1, s.locks)

	require.NoError(t, Migrate(s))
	assert.Equal(t, 1, s.locks, "current stores are not locked again")
}

func TestMalformedValuesFallBack(t *testing.T) {
	s := newMapStore()
	s.m[VersionKey] = "garbage"
	s.m[KeyShowNotifications] = "maybe"
	s.m[KeyReduceMotion] = "true"

	p, err := Load(s)
	require.NoError(t, err)
	assert.True(t, p.ShowNotifications)
	assert.True(t, p.ReduceMotion)
	assert.Equal(t, "1", s.m[VersionKey])
}

func TestValidate(t *testing.T) {
	p := Defaults()
	p.SelectedDataset = "datasetB"
	require.NoError(t, p.Validate())
	assert.Equal(t, "B", p.SelectedDataset)

	p.SelectedDataset = "C"
	assert.Equal(t, finance.ErrUnknownDataset, p.Validate())

	p = Defaults()
	p.CurrencyFormat = "  "
	assert.Error(t, p.Validate())

	p = Defaults()
	p.DateFormat = ""
	assert.Error(t, p.Validate())
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 9)
	assert.NotContains(t, keys, VersionKey)
}

func TestNewStoreUnknownDriver(t *testing.T) {
	_, err := NewStore("no-such-driver", nil)
	assert.Equal(t, ErrDriverDoesNotExist, err)
}
