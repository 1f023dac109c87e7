// ABOUTME: Configuration for the comment board and its store backends.
// ABOUTME: Reads an XDG config file and .env through viper, with COMMENTBOX_ env overrides.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/commentbox/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendRedis = "redis"
	BackendCharm = "charm"

	envPrefix = "COMMENTBOX"
)

// Config holds all settings. Only connection and logging parameters are
// configurable; the board itself has no options.
type Config struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
	Charm   CharmConfig `mapstructure:"charm"`
	Log     LogConfig   `mapstructure:"log"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type CharmConfig struct {
	// Host is the charm server (default: charm.2389.dev)
	Host string `mapstructure:"host"`

	DBName string `mapstructure:"db_name"`

	// AutoSync enables automatic sync after writes (default: true)
	AutoSync bool `mapstructure:"auto_sync"`

	// StaleThreshold pulls before reads when the last sync is older (0 disables)
	StaleThreshold time.Duration `mapstructure:"stale_threshold"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`

	// File receives log output; empty means stderr.
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendRedis)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "commentbox:Comments")
	v.SetDefault("charm.host", "charm.2389.dev")
	v.SetDefault("charm.db_name", "commentbox")
	v.SetDefault("charm.auto_sync", true)
	v.SetDefault("charm.stale_threshold", time.Duration(0))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "commentbox")
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads configuration from path. An empty path selects ConfigPath, and
// only that default file may be absent; a missing explicit path is an error.
// A .env file in the working directory is loaded into the environment first;
// it never overrides variables that are already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no backend can work with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr must be set")
		}
	case BackendCharm:
	default:
		return fmt.Errorf("%w: %q", store.ErrUnknownBackend, c.Backend)
	}
	return nil
}
