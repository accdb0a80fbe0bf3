package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks YTA_* variables; viper ignores empty values by default
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("YTA_BINARY", "")
	t.Setenv("YTA_LOG_LEVEL", "")
	t.Setenv("YTA_LOG_FORMAT", "")
}

func TestLoadEnvironment_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := loadEnvironment(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, &Environment{
		Binary:    "yt-dlp",
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}, env)
}

func TestLoadEnvironment_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YTA_BINARY", "/opt/bin/yt-dlp")
	t.Setenv("YTA_LOG_LEVEL", "debug")
	t.Setenv("YTA_LOG_FORMAT", "json")

	env, err := loadEnvironment(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/yt-dlp", env.Binary)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "json", env.LogFormat)
}

func TestLoadEnvironment_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `{"binary": "/usr/local/bin/yt-dlp", "log_level": "warn"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".json"), []byte(content), 0644))

	env, err := loadEnvironment(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/yt-dlp", env.Binary)
	assert.Equal(t, "warn", env.LogLevel)
	assert.Equal(t, DefaultLogFormat, env.LogFormat)
}

func TestLoadEnvironment_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".json"), []byte(`{"log_level": "warn"}`), 0644))
	t.Setenv("YTA_LOG_LEVEL", "error")

	env, err := loadEnvironment(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "error", env.LogLevel)
}

func TestLoadEnvironment_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("YTA_LOG_FORMAT", "xml")

	_, err := loadEnvironment(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadEnvironment_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".json"), []byte(`{"binary":`), 0644))

	_, err := loadEnvironment(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
