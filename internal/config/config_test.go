package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"TAXI_DATA_FILE", "TAXI_ZONE_FILE", "TAXI_EDGE_SCALE", "TAXI_SEED", "TAXI_ADDR", "DEBUG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultZoneFile, cfg.ZoneFile)
	assert.Equal(t, DefaultEdgeScale, cfg.EdgeScale)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.False(t, cfg.Debug)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TAXI_DATA_FILE", "large.txt")
	t.Setenv("TAXI_EDGE_SCALE", "250")
	t.Setenv("TAXI_SEED", "42")
	t.Setenv("DEBUG", "true")

	cfg := FromEnv()

	assert.Equal(t, "large.txt", cfg.DataFile)
	assert.Equal(t, 250.0, cfg.EdgeScale)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("TAXI_EDGE_SCALE", "wide")
	t.Setenv("TAXI_SEED", "-1")
	t.Setenv("DEBUG", "yes")

	cfg := FromEnv()

	assert.Equal(t, DefaultEdgeScale, cfg.EdgeScale)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TAXI_ZONE_FILE=zones.csv\n"), 0o600))
	t.Setenv("TAXI_ZONE_FILE", "")
	os.Unsetenv("TAXI_ZONE_FILE")

	LoadEnv(path)

	assert.Equal(t, "zones.csv", FromEnv().ZoneFile)
}
