package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App AppConfig `mapstructure:"app"`
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
}

// AppConfig holds the values shown on the about screen
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// APIConfig holds the breed API configuration
type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	BreedsPath string `mapstructure:"breeds_path"`
	Proxy      string `mapstructure:"proxy"`
}

// BreedsURL is the single endpoint the client ever calls.
func (c APIConfig) BreedsURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.BreedsPath, "/")
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const envPrefix = "DOGBREEDS"

// Load loads configuration from an optional YAML file with environment variable overrides.
// An empty path searches for config.yaml in the current directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.BreedsPath == "" {
		return errors.New("api.breeds_path must not be empty")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Mocky Dog Breed API")
	v.SetDefault("app.version", "1.0")

	v.SetDefault("api.base_url", "https://run.mocky.io/v3/")
	v.SetDefault("api.breeds_path", "c79426d7-58df-42ee-ac6b-d1f2ca87fddc")
	v.SetDefault("api.proxy", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
