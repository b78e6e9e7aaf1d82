package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/fare"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, fare.Default(), c.Calculator())
	assert.Equal(t, 10*time.Minute, c.CacheTTL())
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Setenv(config.EnvCacheSize, "32")
	t.Setenv(config.EnvFareZone, "4.5")

	c, err := config.Load(filepath.Join("testdata", "metro.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fixtures/stations.csv", c.StationsFile)
	assert.Equal(t, "data/connections.csv", c.ConnectionsFile, "untouched keys keep defaults")
	assert.Equal(t, "fixtures/network.yaml", c.NetworkFile)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 32, c.CacheSize, "env beats file")
	assert.Equal(t, fare.Calculator{Base: 2, PerKm: 1, ZoneSurcharge: 4.5}, c.Calculator())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.ErrorContains(t, err, "absent.yaml")

	_, err = config.Load(filepath.Join("testdata", "unknown.yaml"))
	assert.ErrorContains(t, err, "parsing config")

	t.Setenv(config.EnvCacheTTL, "soon")
	_, err = config.Load("")
	assert.ErrorContains(t, err, config.EnvCacheTTL)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.CacheSize = -1
	assert.Error(t, c.Validate())

	c = config.Default()
	c.CacheTTLSeconds = -5
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Fare.PerKm = -0.1
	assert.ErrorIs(t, c.Validate(), fare.ErrInvalidTariff)
}

func TestLoad_EnvValidation(t *testing.T) {
	t.Setenv(config.EnvFareBase, "-3")
	_, err := config.Load("")
	assert.ErrorIs(t, err, fare.ErrInvalidTariff)
}
