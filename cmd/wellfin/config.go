package main

import (
	"io/ioutil"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	httpfrontend "github.com/wellfin/wellfin/frontend/http"
	"github.com/wellfin/wellfin/pkg/log"

	// Imports to register preference store drivers.
	_ "github.com/wellfin/wellfin/preferences/bolt"
	"github.com/wellfin/wellfin/preferences/memory"
	_ "github.com/wellfin/wellfin/preferences/redis"
)

type storeConfig struct {
	Name   string      `yaml:"name"`
	Config interface{} `yaml:"config"`
}

// Config represents the configuration used for executing wellfin.
type Config struct {
	MetricsAddr string              `yaml:"metrics_addr"`
	HTTPConfig  httpfrontend.Config `yaml:"http"`
	Preferences storeConfig         `yaml:"preferences"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"metricsAddr": cfg.MetricsAddr,
		"http":        cfg.HTTPConfig.Addr,
		"preferences": cfg.Preferences.Name,
	}
}

// ConfigFile represents a namespaced YAML configation file.
type ConfigFile struct {
	Wellfin Config `yaml:"wellfin"`
}

// ParseConfigFile returns a new ConfigFile given the path to a YAML
// configuration file.
//
// It supports relative and absolute paths and environment variables. An
// empty path yields an empty config, which validates to the defaults.
func ParseConfigFile(path string) (*ConfigFile, error) {
	if path == "" {
		return &ConfigFile{}, nil
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contents, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var cfgFile ConfigFile
	err = yaml.Unmarshal(contents, &cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "malformed config file")
	}

	return &cfgFile, nil
}

// envOverrides are the environment variables that take precedence over the
// config file.
type envOverrides struct {
	Port        string `env:"PORT"`
	MetricsAddr string `env:"WELLFIN_METRICS_ADDR"`
	Debug       bool   `env:"WELLFIN_DEBUG"`
}

// ApplyEnv overrides cfg with any values set in the environment and reports
// whether debug logging was requested.
func (cfg *Config) ApplyEnv() (debug bool, err error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return false, errors.Wrap(err, "failed to parse environment")
	}

	if overrides.Port != "" {
		cfg.HTTPConfig.Addr = ":" + overrides.Port
	}
	if overrides.MetricsAddr != "" {
		cfg.MetricsAddr = overrides.MetricsAddr
	}
	return overrides.Debug, nil
}

// storeName returns the configured preference driver, defaulting to the
// in-memory store.
func (cfg Config) storeName() string {
	if cfg.Preferences.Name == "" {
		return memory.Name
	}
	return cfg.Preferences.Name
}
