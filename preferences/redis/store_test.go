package redis

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/stretchr/testify/require"

	"github.com/wellfin/wellfin/preferences"
)

func createNew(t *testing.T) (preferences.Store, *miniredis.Miniredis) {
	rs, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(rs.Close)

	s, err := New(Config{
		RedisBroker:         fmt.Sprintf("redis://@%s/0", rs.Addr()),
		RedisReadTimeout:    10 * time.Second,
		RedisWriteTimeout:   10 * time.Second,
		RedisConnectTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	return s, rs
}

func TestStore(t *testing.T) {
	s, _ := createNew(t)
	preferences.TestStore(t, s)
}

func TestValuesLiveInOneHash(t *testing.T) {
	s, rs := createNew(t)
	require.NoError(t, s.Put("a", "1"))
	require.Equal(t, "1", rs.HGet("wellfin:preferences", "a"))
	require.Empty(t, s.Stop().Wait())
}

func TestLock(t *testing.T) {
	s, _ := createNew(t)
	l, ok := s.(preferences.Locker)
	require.True(t, ok)

	unlock, err := l.Lock("migrate")
	require.NoError(t, err)
	require.NoError(t, unlock())

	// The lock can be taken again once released.
	unlock, err = l.Lock("migrate")
	require.NoError(t, err)
	require.NoError(t, unlock())
	require.Empty(t, s.Stop().Wait())
}

func TestUnreachable(t *testing.T) {
	_, err := New(Config{
		RedisBroker:         "redis://127.0.0.1:1/0",
		RedisConnectTimeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestFailedPingClosesPool(t *testing.T) {
	cfg := Config{
		RedisBroker:         "redis://127.0.0.1:1/0",
		RedisConnectTimeout: 100 * time.Millisecond,
	}.Validate()
	u, err := parseRedisURL(cfg.RedisBroker)
	require.NoError(t, err)

	rb := newRedisBackend(&cfg, u)
	require.Error(t, rb.ping())

	err = rb.pool.Get().Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "closed")
}

func TestPingKeepsPoolOpen(t *testing.T) {
	rs, err := miniredis.Run()
	require.NoError(t, err)
	defer rs.Close()

	cfg := Config{RedisBroker: fmt.Sprintf("redis://@%s/0", rs.Addr())}.Validate()
	u, err := parseRedisURL(cfg.RedisBroker)
	require.NoError(t, err)

	rb := newRedisBackend(&cfg, u)
	require.NoError(t, rb.ping())
	conn := rb.pool.Get()
	require.NoError(t, conn.Err())
	require.NoError(t, conn.Close())
	require.NoError(t, rb.pool.Close())
}

func TestParseRedisURL(t *testing.T) {
	var table = []struct {
		in       string
		expected redisURL
	}{
		{"redis://@127.0.0.1:6379/2", redisURL{Host: "127.0.0.1:6379", DB: 2}},
		{"redis://secret@host:6379", redisURL{Host: "host:6379", Password: "secret"}},
		{"redis-socket://@/tmp/redis.sock?db=3", redisURL{SocketPath: "/tmp/redis.sock", DB: 3}},
	}
	for _, tt := range table {
		u, err := parseRedisURL(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.expected, *u, tt.in)
	}

	_, err := parseRedisURL("http://host")
	require.Equal(t, errNoRedisScheme, err)
	_, err = parseRedisURL("redis://host/notanumber")
	require.Error(t, err)
}
