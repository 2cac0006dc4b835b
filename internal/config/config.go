// Package config defines the runtime configuration of mortgage-engine and
// loads it from an optional YAML file and the environment.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-engine/pkg/constants"
	"github.com/iwvelando/mortgage-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-engine.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
	Engine  EngineConfig  `yaml:"engine,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ServerConfig holds the HTTP server options.
type ServerConfig struct {
	Address       string          `yaml:"address,omitempty"`
	MaxUploadSize string          `yaml:"maxUploadSize,omitempty"` // e.g. 256K, 1M
	ReadTimeout   time.Duration   `yaml:"readTimeout,omitempty"`
	WriteTimeout  time.Duration   `yaml:"writeTimeout,omitempty"`
	RateLimit     RateLimitConfig `yaml:"rateLimit,omitempty"`
}

// RateLimitConfig limits requests per client address. A non-positive
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond,omitempty"`
	Burst             int     `yaml:"burst,omitempty"`
}

// CacheConfig selects the response cache used by the HTTP server.
type CacheConfig struct {
	Backend      string        `yaml:"backend,omitempty"` // none, memory, redis
	TTL          time.Duration `yaml:"ttl,omitempty"`
	RedisAddress string        `yaml:"redisAddress,omitempty"`
}

// EngineConfig holds calculation engine options.
type EngineConfig struct {
	Parallel bool `yaml:"parallel,omitempty"`
}

// LoadConfiguration loads the YAML configuration at configPath, layered over
// defaults and under MORTGAGE_ENGINE_* environment overrides. An empty path
// loads defaults and environment only.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader is LoadConfiguration for YAML held in memory.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}
	return decode(v)
}

// Validate checks the enumerated settings.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if err := validation.ValidateCacheBackend(c.Cache.Backend); err != nil {
		return err
	}
	if c.Cache.Backend == constants.CacheBackendRedis && c.Cache.RedisAddress == "" {
		return fmt.Errorf("cache backend %s requires cache.redisAddress", constants.CacheBackendRedis)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("expected logging format of json or console, got %s", c.Logging.Format)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxUploadSize", "256K")
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.rateLimit.requestsPerSecond", constants.DefaultRequestsPerSecond)
	v.SetDefault("server.rateLimit.burst", constants.DefaultBurst)
	v.SetDefault("cache.backend", constants.CacheBackendNone)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.redisAddress", "")
	v.SetDefault("engine.parallel", true)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}
