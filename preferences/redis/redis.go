package redis

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/redigo"
	redigolib "github.com/gomodule/redigo/redis"
)

// redisBackend bundles the connection pool with the lock manager built on
// top of it.
type redisBackend struct {
	pool    *redigolib.Pool
	redsync *redsync.Redsync
}

func newRedisBackend(cfg *Config, u *redisURL) *redisBackend {
	rc := &redisConnector{
		URL:            u,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		ConnectTimeout: cfg.RedisConnectTimeout,
	}
	pool := rc.NewPool()
	return &redisBackend{
		pool:    pool,
		redsync: redsync.New(redigo.NewPool(pool)),
	}
}

func (rb *redisBackend) open() redigolib.Conn {
	return rb.pool.Get()
}

// ping checks that the server answers and closes the pool if it does not.
func (rb *redisBackend) ping() error {
	conn := rb.open()
	_, err := conn.Do("PING")
	conn.Close()
	if err != nil {
		rb.pool.Close()
	}
	return err
}

type redisConnector struct {
	URL            *redisURL
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	ConnectTimeout time.Duration
}

// NewPool returns a new pool of Redis connections.
func (rc *redisConnector) NewPool() *redigolib.Pool {
	return &redigolib.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial:        rc.open,
		// Only connections idle for more than 10 seconds are PINGed.
		TestOnBorrow: func(c redigolib.Conn, t time.Time) error {
			if time.Since(t) < 10*time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func (rc *redisConnector) open() (redigolib.Conn, error) {
	opts := []redigolib.DialOption{
		redigolib.DialDatabase(rc.URL.DB),
		redigolib.DialReadTimeout(rc.ReadTimeout),
		redigolib.DialWriteTimeout(rc.WriteTimeout),
		redigolib.DialConnectTimeout(rc.ConnectTimeout),
	}

	if rc.URL.Password != "" {
		opts = append(opts, redigolib.DialPassword(rc.URL.Password))
	}

	if rc.URL.SocketPath != "" {
		return redigolib.Dial("unix", rc.URL.SocketPath, opts...)
	}

	return redigolib.Dial("tcp", rc.URL.Host, opts...)
}

// A redisURL is a parsed broker address of one of the forms
//
//	redis://[password@]host[/db]
//	redis-socket://[password@]path[?db=db]
type redisURL struct {
	Host       string
	SocketPath string
	Password   string
	DB         int
}

var errNoRedisScheme = errors.New("no redis scheme found")

func parseRedisURL(target string) (*redisURL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	ru := &redisURL{Password: u.User.String()}
	switch u.Scheme {
	case "redis":
		ru.Host = u.Host
		if path := strings.Trim(u.Path, "/"); path != "" {
			if ru.DB, err = strconv.Atoi(path); err != nil {
				return nil, err
			}
		}
	case "redis-socket":
		ru.SocketPath = u.Path
		if db := u.Query().Get("db"); db != "" {
			if ru.DB, err = strconv.Atoi(db); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errNoRedisScheme
	}

	return ru, nil
}
