package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 100000, cfg.RowLimit)
	assert.Equal(t, filepath.Join("data", "flights.csv"), cfg.FlightsPath())
	assert.Equal(t, time.Minute, time.Duration(cfg.PollInterval))
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	body := `{"listen": ":9999", "row_limit": 5000, "poll_interval": "30s"}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0644))

	cfg, err := loadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, 5000, cfg.RowLimit)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.PollInterval))
	// untouched fields keep their defaults
	assert.Equal(t, "app.log", cfg.LogName)
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0644))

	_, err := loadConfig(file)
	assert.Error(t, err)
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(out))
	assert.Equal(t, d, back)
}
