// Package bolt implements a preference Store persisted in a bbolt file.
package bolt

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
	yaml "gopkg.in/yaml.v2"

	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/stop"
	"github.com/wellfin/wellfin/preferences"
)

// Name is the name by which this store is registered.
const Name = "bolt"

// Default config constants.
const (
	defaultPath    = "data/wellfin.db"
	defaultBucket  = "preferences"
	defaultTimeout = time.Second
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

// Config holds the configuration of a bolt Store.
type Config struct {
	Path    string        `yaml:"path"`
	Bucket  string        `yaml:"bucket"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"name":    Name,
		"path":    cfg.Path,
		"bucket":  cfg.Bucket,
		"timeout": cfg.Timeout,
	}
}

// Validate sanity checks values set in a config and returns a new config with
// default values replacing anything that is invalid.
//
// This function warns to the logger when a value is changed.
func (cfg Config) Validate() Config {
	validcfg := cfg

	if cfg.Path == "" {
		validcfg.Path = defaultPath
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".Path",
			"provided": cfg.Path,
			"default":  validcfg.Path,
		})
	}

	if cfg.Bucket == "" {
		validcfg.Bucket = defaultBucket
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".Bucket",
			"provided": cfg.Bucket,
			"default":  validcfg.Bucket,
		})
	}

	if cfg.Timeout <= 0 {
		validcfg.Timeout = defaultTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".Timeout",
			"provided": cfg.Timeout,
			"default":  validcfg.Timeout,
		})
	}

	return validcfg
}

type store struct {
	db     *bbolt.DB
	bucket []byte
}

// New opens (or creates) the bolt file named by cfg.
func New(provided Config) (preferences.Store, error) {
	cfg := provided.Validate()

	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "failed to create bolt directory")
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bolt file")
	}

	s := &store{db: db, bucket: []byte(cfg.Bucket)}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create bolt bucket")
	}

	log.Debug("preferences: opened bolt store", cfg)
	return s, nil
}

func (s *store) Get(key string) (string, error) {
	var (
		v     string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		// Values are only valid inside the transaction.
		if b := tx.Bucket(s.bucket).Get([]byte(key)); b != nil {
			v, found = string(b), true
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", preferences.ErrKeyNotFound
	}
	return v, nil
}

func (s *store) Put(key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
}

func (s *store) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *store) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		c.Done(s.db.Close())
	}()
	return c.Result()
}
