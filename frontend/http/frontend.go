// Package http implements the finance API over HTTP.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache"
	"github.com/julienschmidt/httprouter"

	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/stop"
	"github.com/wellfin/wellfin/preferences"
)

// Name is the name by which this frontend is referred to in logs.
const Name = "http"

// Default config constants.
const (
	defaultAddr         = ":8080"
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 5 * time.Second
	defaultMaxCount     = 500
	defaultCacheTTL     = 5 * time.Minute
)

// Config represents all of the configurable options for the HTTP API.
type Config struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxCount     int           `yaml:"max_count"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"addr":         cfg.Addr,
		"readTimeout":  cfg.ReadTimeout,
		"writeTimeout": cfg.WriteTimeout,
		"maxCount":     cfg.MaxCount,
		"cacheTTL":     cfg.CacheTTL,
	}
}

// Validate sanity checks values set in a config and returns a new config with
// default values replacing anything that is invalid.
//
// This function warns to the logger when a value is changed.
func (cfg Config) Validate() Config {
	validcfg := cfg

	if cfg.Addr == "" {
		validcfg.Addr = defaultAddr
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".Addr",
			"provided": cfg.Addr,
			"default":  validcfg.Addr,
		})
	}

	if cfg.ReadTimeout <= 0 {
		validcfg.ReadTimeout = defaultReadTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".ReadTimeout",
			"provided": cfg.ReadTimeout,
			"default":  validcfg.ReadTimeout,
		})
	}

	if cfg.WriteTimeout <= 0 {
		validcfg.WriteTimeout = defaultWriteTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".WriteTimeout",
			"provided": cfg.WriteTimeout,
			"default":  validcfg.WriteTimeout,
		})
	}

	if cfg.MaxCount <= 0 {
		validcfg.MaxCount = defaultMaxCount
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".MaxCount",
			"provided": cfg.MaxCount,
			"default":  validcfg.MaxCount,
		})
	}

	if cfg.CacheTTL <= 0 {
		validcfg.CacheTTL = defaultCacheTTL
		log.Warn("falling back to default configuration", log.Fields{
			"name":     Name + ".CacheTTL",
			"provided": cfg.CacheTTL,
			"default":  validcfg.CacheTTL,
		})
	}

	return validcfg
}

// Frontend holds the state of the HTTP API.
type Frontend struct {
	srv   *http.Server
	prefs preferences.Store
	cache *ttlcache.Cache
	now   func() time.Time

	Config
}

// NewFrontend creates a Frontend and starts serving it in the background.
func NewFrontend(prefs preferences.Store, provided Config) (*Frontend, error) {
	f := newFrontend(prefs, provided)

	f.srv = &http.Server{
		Addr:         f.Addr,
		Handler:      f.handler(),
		ReadTimeout:  f.ReadTimeout,
		WriteTimeout: f.WriteTimeout,
	}

	go func() {
		log.Info("started serving HTTP", f.Config)
		if err := f.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed while serving http", log.Err(err))
		}
	}()

	return f, nil
}

func newFrontend(prefs preferences.Store, provided Config) *Frontend {
	cfg := provided.Validate()

	cache := ttlcache.NewCache()
	cache.SetTTL(cfg.CacheTTL)

	return &Frontend{
		prefs:  prefs,
		cache:  cache,
		now:    time.Now,
		Config: cfg,
	}
}

// Stop shuts down the Frontend, waiting for in-flight requests.
func (f *Frontend) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		defer f.cache.Close()
		if f.srv == nil {
			c.Done()
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), f.WriteTimeout)
		defer cancel()
		c.Done(f.srv.Shutdown(ctx))
	}()
	return c.Result()
}

func (f *Frontend) handler() http.Handler {
	router := httprouter.New()
	router.GET("/health", makeHandler("health", f.health))
	router.GET("/version", makeHandler("version", f.version))
	router.GET("/user/:id", makeHandler("user", f.user))
	router.GET("/mock/:kind", makeHandler("mock", f.mock))
	router.GET("/preferences", makeHandler("get_preferences", f.getPreferences))
	router.PUT("/preferences", makeHandler("put_preferences", f.putPreferences))
	router.DELETE("/preferences", makeHandler("reset_preferences", f.resetPreferences))
	return router
}

// routeHandler handles a request and reports the error, if any, that it
// did not write itself.
type routeHandler func(http.ResponseWriter, *http.Request, httprouter.Params) error

// makeHandler times a routeHandler and turns its error into a response.
func makeHandler(action string, h routeHandler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		start := time.Now()
		err := h(w, r, p)
		if err != nil {
			if werr := WriteError(w, err); werr != nil {
				log.Debug("http: failed to write error", log.Err(werr))
			}
		}
		duration := time.Since(start)
		recordResponseDuration(action, err, duration)

		log.Debug("http: handled request", log.Fields{
			"action":   action,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"duration": duration,
		})
	}
}
