package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wellfin/wellfin/preferences"
)

func TestStore(t *testing.T) { preferences.TestStore(t, New()) }

func TestRegistered(t *testing.T) {
	s, err := preferences.NewStore(Name, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Empty(t, s.Stop().Wait())
}

func TestStoppedStorePanics(t *testing.T) {
	s := New()
	s.Stop().Wait()
	require.Panics(t, func() { _, _ = s.Get("k") })
}
