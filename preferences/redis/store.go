// Package redis implements a preference Store kept in a Redis hash, for
// deployments where several API processes share preferences.
package redis

import (
	"time"

	redigolib "github.com/gomodule/redigo/redis"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/stop"
	"github.com/wellfin/wellfin/preferences"
)

// Name is the name by which this store is registered.
const Name = "redis"

// Default config constants.
const (
	defaultRedisBroker         = "redis://myRedis@127.0.0.1:6379/0"
	defaultKeyPrefix           = "wellfin:"
	defaultRedisReadTimeout    = time.Second * 15
	defaultRedisWriteTimeout   = time.Second * 15
	defaultRedisConnectTimeout = time.Second * 15
)

func init() {
	preferences.RegisterDriver(Name, driver{})
}

type driver struct{}

func (d driver) NewStore(icfg interface{}) (preferences.Store, error) {
	// Marshal the config back into bytes.
	bytes, err := yaml.Marshal(icfg)
	if err != nil {
		return nil, err
	}

	// Unmarshal the bytes into the proper config type.
	var cfg Config
	err = yaml.Unmarshal(bytes, &cfg)
	if err != nil {
		return nil, err
	}

	return New(cfg)
}

// Config holds the configuration of a redis Store.
type Config struct {
	RedisBroker         string        `yaml:"redis_broker"`
	KeyPrefix           string        `yaml:"key_prefix"`
	RedisReadTimeout    time.Duration `yaml:"redis_read_timeout"`
	RedisWriteTimeout   time.Duration `yaml:"redis_write_timeout"`
	RedisConnectTimeout time.Duration `yaml:"redis_connect_timeout"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"name":                Name,
		"redisBroker":         cfg.RedisBroker,
		"keyPrefix":           cfg.KeyPrefix,
		"redisReadTimeout":    cfg.RedisReadTimeout,
		"redisWriteTimeout":   cfg.RedisWriteTimeout,
		"redisConnectTimeout": cfg.RedisConnectTimeout,
	}
}

// Validate sanity checks values set in a config and returns a new config with
// default values replacing anything that is invalid.
//
// This function warns to the logger when a value is changed.
func (cfg Config) Validate() Config {
	validcfg := cfg

	if cfg.RedisBroker == "" {
		validcfg.RedisBroker = defaultRedisBroker
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".RedisBroker",
			"provided": cfg.RedisBroker,
			"default":  validcfg.RedisBroker,
		})
	}

	if cfg.KeyPrefix == "" {
		validcfg.KeyPrefix = defaultKeyPrefix
	}

	if cfg.RedisReadTimeout <= 0 {
		validcfg.RedisReadTimeout = defaultRedisReadTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".RedisReadTimeout",
			"provided": cfg.RedisReadTimeout,
			"default":  validcfg.RedisReadTimeout,
		})
	}

	if cfg.RedisWriteTimeout <= 0 {
		validcfg.RedisWriteTimeout = defaultRedisWriteTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".RedisWriteTimeout",
			"provided": cfg.RedisWriteTimeout,
			"default":  validcfg.RedisWriteTimeout,
		})
	}

	if cfg.RedisConnectTimeout <= 0 {
		validcfg.RedisConnectTimeout = defaultRedisConnectTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".RedisConnectTimeout",
			"provided": cfg.RedisConnectTimeout,
			"default":  validcfg.RedisConnectTimeout,
		})
	}

	return validcfg
}

type store struct {
	rb      *redisBackend
	hashKey string
	prefix  string
	closed  chan struct{}
}

// New creates a Store backed by the Redis instance named in cfg.
func New(provided Config) (preferences.Store, error) {
	cfg := provided.Validate()

	u, err := parseRedisURL(cfg.RedisBroker)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis broker")
	}

	s := &store{
		rb:      newRedisBackend(&cfg, u),
		hashKey: cfg.KeyPrefix + "preferences",
		prefix:  cfg.KeyPrefix,
		closed:  make(chan struct{}),
	}

	if err := s.rb.ping(); err != nil {
		return nil, errors.Wrap(err, "failed to reach redis")
	}

	log.Debug("preferences: connected to redis", cfg)
	return s, nil
}

func (s *store) panicIfClosed() {
	select {
	case <-s.closed:
		panic("attempted to interact with stopped redis store")
	default:
	}
}

func (s *store) Get(key string) (string, error) {
	s.panicIfClosed()

	conn := s.rb.open()
	defer conn.Close()

	v, err := redigolib.String(conn.Do("HGET", s.hashKey, key))
	if err == redigolib.ErrNil {
		return "", preferences.ErrKeyNotFound
	}
	return v, err
}

func (s *store) Put(key, value string) error {
	s.panicIfClosed()

	conn := s.rb.open()
	defer conn.Close()

	_, err := conn.Do("HSET", s.hashKey, key, value)
	return err
}

func (s *store) Delete(keys ...string) error {
	s.panicIfClosed()
	if len(keys) == 0 {
		return nil
	}

	conn := s.rb.open()
	defer conn.Close()

	_, err := conn.Do("HDEL", redigolib.Args{}.Add(s.hashKey).AddFlat(keys)...)
	return err
}

// Lock implements preferences.Locker with a redsync mutex.
func (s *store) Lock(name string) (func() error, error) {
	s.panicIfClosed()

	m := s.rb.redsync.NewMutex(s.prefix + "lock:" + name)
	if err := m.Lock(); err != nil {
		return nil, err
	}
	return func() error {
		_, err := m.Unlock()
		return err
	}, nil
}

func (s *store) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		close(s.closed)
		c.Done(s.rb.pool.Close())
	}()
	return c.Result()
}
