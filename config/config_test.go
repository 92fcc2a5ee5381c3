package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "5222", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "moodtrack.db", c.DBPath)
	assert.Equal(t, []string{"http://localhost:4200"}, c.AllowedOrigins)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, "info", c.LogLevel)
}

func TestApplyDefaultsPostgresPort(t *testing.T) {
	c := AppConfig{DBDriver: "postgres"}
	applyDefaults(&c)
	assert.Equal(t, "5432", c.DBPort)
}

func TestLoadJSONConfigGroupedSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"AppPort": "9000", "RateLimitPerMinute": 120, "AllowedOrigins": ["https://mood.example.com"]},
		"gin": {"Mode": "debug", "LogPath": "logs/custom.log"},
		"database": {"Driver": "postgres", "DBHost": "db.internal", "DBName": "mood"},
		"redis": {"RedisHost": "cache.internal", "RedisPort": 6380},
		"log": {"Level": "warn", "MaxSizeMB": 10, "Compress": true}
	}`), 0o644))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, 120, c.RateLimitPerMinute)
	assert.Equal(t, []string{"https://mood.example.com"}, c.AllowedOrigins)
	assert.Equal(t, "debug", c.GinMode)
	assert.Equal(t, "logs/custom.log", c.GinPath)
	assert.Equal(t, "postgres", c.DBDriver)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "mood", c.DBName)
	assert.Equal(t, "cache.internal", c.RedisHost)
	assert.Equal(t, 6380, c.RedisPort)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 10, c.LogMaxSizeMB)
	assert.True(t, c.LogCompress)
}

func TestLoadJSONConfigMissingFileIgnored(t *testing.T) {
	var c AppConfig
	assert.NoError(t, loadJSONConfig(filepath.Join(t.TempDir(), "nope.json"), &c))
	assert.Equal(t, AppConfig{}, c)
}

func TestLoadJSONConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var c AppConfig
	assert.Error(t, loadJSONConfig(path, &c))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "7777")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_COMPRESS", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "15")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "7777", c.AppPort)
	assert.Equal(t, "mysql", c.DBDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.True(t, c.LogCompress)
	assert.Equal(t, 15, c.RateLimitPerMinute)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,, "))
	assert.Empty(t, splitAndTrim("  ,  "))
}
