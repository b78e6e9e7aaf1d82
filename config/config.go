// Package config handles application configuration from defaults, an
// optional .env file, an optional YAML file and environment variables, in
// that order of increasing precedence.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/fare"
)

// Environment variables read by Load.
const (
	EnvStationsFile    = "METRO_STATIONS_FILE"
	EnvConnectionsFile = "METRO_CONNECTIONS_FILE"
	EnvNetworkFile     = "METRO_NETWORK_FILE"
	EnvLogLevel        = "METRO_LOG_LEVEL"
	EnvCacheSize       = "METRO_CACHE_SIZE"
	EnvCacheTTL        = "METRO_CACHE_TTL_SECONDS"
	EnvFareBase        = "METRO_FARE_BASE"
	EnvFarePerKm       = "METRO_FARE_PER_KM"
	EnvFareZone        = "METRO_FARE_ZONE_SURCHARGE"
)

// Config holds all application configuration.
type Config struct {
	StationsFile    string `yaml:"stations_file"`
	ConnectionsFile string `yaml:"connections_file"`
	NetworkFile     string `yaml:"network_file"`
	LogLevel        string `yaml:"log_level"`

	CacheSize       int `yaml:"cache_size"`
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	Fare Fare `yaml:"fare"`
}

// Fare holds the tariff rates.
type Fare struct {
	Base          float64 `yaml:"base"`
	PerKm         float64 `yaml:"per_km"`
	ZoneSurcharge float64 `yaml:"zone_surcharge"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StationsFile:    "data/stations.csv",
		ConnectionsFile: "data/connections.csv",
		LogLevel:        "info",
		CacheSize:       1024,
		CacheTTLSeconds: 600,
		Fare: Fare{
			Base:          fare.DefaultBase,
			PerKm:         fare.DefaultPerKm,
			ZoneSurcharge: fare.DefaultZoneSurcharge,
		},
	}
}

// Load builds a Config. A .env file in the working directory is applied to
// the process environment if present; path, if non-empty, must name a
// readable YAML file. The result is validated.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading .env")
	}

	c := Default()
	if path != "" {
		if err := c.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.StationsFile = getEnv(EnvStationsFile, c.StationsFile)
	c.ConnectionsFile = getEnv(EnvConnectionsFile, c.ConnectionsFile)
	c.NetworkFile = getEnv(EnvNetworkFile, c.NetworkFile)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)

	var err error
	if c.CacheSize, err = getIntEnv(EnvCacheSize, c.CacheSize); err != nil {
		return err
	}
	if c.CacheTTLSeconds, err = getIntEnv(EnvCacheTTL, c.CacheTTLSeconds); err != nil {
		return err
	}
	if c.Fare.Base, err = getFloatEnv(EnvFareBase, c.Fare.Base); err != nil {
		return err
	}
	if c.Fare.PerKm, err = getFloatEnv(EnvFarePerKm, c.Fare.PerKm); err != nil {
		return err
	}
	if c.Fare.ZoneSurcharge, err = getFloatEnv(EnvFareZone, c.Fare.ZoneSurcharge); err != nil {
		return err
	}

	return nil
}

// Validate checks ranges.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.CacheTTLSeconds < 0 {
		return errors.Errorf("cache_ttl_seconds must not be negative, got %d", c.CacheTTLSeconds)
	}
	if err := c.Calculator().Validate(); err != nil {
		return errors.Wrap(err, "fare")
	}

	return nil
}

// CacheTTL returns the cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Calculator returns the configured tariff.
func (c *Config) Calculator() fare.Calculator {
	return fare.Calculator{Base: c.Fare.Base, PerKm: c.Fare.PerKm, ZoneSurcharge: c.Fare.ZoneSurcharge}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}

	return n, nil
}

func getFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}

	return f, nil
}
