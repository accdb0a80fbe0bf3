package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ytget/yt-audio/internal/platform"
)

// Environment keys, read from YTA_* variables or the config file
const (
	EnvPrefix    = "YTA"
	ConfigName   = "yt-audio"
	KeyBinary    = "binary"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Default values
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

const configDirName = "yt-audio"

// Environment holds process-level settings that are not user preferences
type Environment struct {
	Binary    string `mapstructure:"binary" validate:"required"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
}

var validate = validator.New()

// LoadEnvironment reads the environment from YTA_* variables and an optional
// yt-audio.{json,yaml,toml} file in the working or user config directory.
func LoadEnvironment() (*Environment, error) {
	return loadEnvironment(viper.New(), configPaths()...)
}

func loadEnvironment(v *viper.Viper, paths ...string) (*Environment, error) {
	v.SetConfigName(ConfigName)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyBinary, platform.DefaultBinary)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var env Environment
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate.Struct(&env); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &env, nil
}

func configPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configDirName))
	}
	return paths
}
