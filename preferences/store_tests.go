package preferences

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStore tests a Store implementation against the interface and runs the
// Preferences lifecycle on top of it. It stops s when done.
func TestStore(t *testing.T, s Store) {
	_, err := s.Get("missing")
	require.Equal(t, ErrKeyNotFound, err)

	require.Nil(t, s.Put("k1", "v1"))
	v, err := s.Get("k1")
	require.Nil(t, err)
	require.Equal(t, "v1", v)

	// Last write wins.
	require.Nil(t, s.Put("k1", "v2"))
	v, err = s.Get("k1")
	require.Nil(t, err)
	require.Equal(t, "v2", v)

	// Empty values are values.
	require.Nil(t, s.Put("empty", ""))
	v, err = s.Get("empty")
	require.Nil(t, err)
	require.Equal(t, "", v)

	require.Nil(t, s.Put("k2", "v"))
	require.Nil(t, s.Delete("k1", "k2", "never-set"))
	_, err = s.Get("k1")
	require.Equal(t, ErrKeyNotFound, err)
	_, err = s.Get("k2")
	require.Equal(t, ErrKeyNotFound, err)
	require.Nil(t, s.Delete())

	// A fresh store loads the defaults and is stamped with the version.
	p, err := Load(s)
	require.Nil(t, err)
	require.Equal(t, Defaults(), p)
	version, err := s.Get(VersionKey)
	require.Nil(t, err)
	require.Equal(t, "1", version)

	p.CurrencyFormat = "USD"
	p.SelectedDataset = "B"
	p.MondayWeekStart = false
	require.Nil(t, Save(s, p))

	loaded, err := Load(s)
	require.Nil(t, err)
	require.Equal(t, p, loaded)

	reset, err := Reset(s)
	require.Nil(t, err)
	require.Equal(t, Defaults(), reset)
	for _, k := range Keys() {
		_, err := s.Get(k)
		require.Equal(t, ErrKeyNotFound, err, k)
	}

	loaded, err = Load(s)
	require.Nil(t, err)
	require.Equal(t, Defaults(), loaded)

	errs := s.Stop().Wait()
	require.Empty(t, errs)
}
